package utils

import "testing"

func TestAbs(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{-3, 3}, {0, 0}, {7, 7}} {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-1, 0, 10) != 0 || ClampInt(11, 0, 10) != 10 || ClampInt(5, 0, 10) != 5 {
		t.Error("ClampInt failed")
	}
}

func TestLine(t *testing.T) {
	got := Line(0, 0, 3, 1)
	want := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("Line = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if pts := Line(2, 2, 2, 2); len(pts) != 1 {
		t.Errorf("single point line = %v", pts)
	}
	if pts := Line(0, 3, 0, 0); len(pts) != 4 || pts[3] != (Point{0, 0}) {
		t.Errorf("vertical line = %v", pts)
	}
}
