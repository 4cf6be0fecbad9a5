package component

import "testing"

func TestFieldOutside(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{X: 400, Y: 300}, false},
		{Position{X: -50, Y: 300}, false},
		{Position{X: -50.1, Y: 300}, true},
		{Position{X: 850, Y: 650}, false},
		{Position{X: 400, Y: 650.5}, true},
	}
	for _, tt := range tests {
		if got := f.Outside(tt.p, 50); got != tt.want {
			t.Errorf("Outside(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFieldClamp(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	got := f.Clamp(Position{X: -10, Y: 700}, 30, 15)
	if got.X != 30 || got.Y != 585 {
		t.Errorf("Clamp = %+v, want {30 585}", got)
	}
	if c := f.Center(); c.X != 400 || c.Y != 300 {
		t.Errorf("Center = %+v", c)
	}
}

func TestHealthDamage(t *testing.T) {
	h := NewHealth(100)
	h.Damage(10)
	if h.Current != 90 || h.IsDead() {
		t.Fatalf("unexpected health %+v", h)
	}
	if h.Fraction() != 0.9 {
		t.Errorf("Fraction = %v", h.Fraction())
	}
	h.Damage(500)
	if h.Current != 0 || !h.IsDead() {
		t.Errorf("health should clamp at zero and be dead, got %+v", h)
	}
}

func TestParticleOpacity(t *testing.T) {
	p := Particle{Life: 15, MaxLife: 30}
	if p.Opacity() != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", p.Opacity())
	}
	if (Particle{}).Opacity() != 0 {
		t.Error("zero particle should be transparent")
	}
}

func TestPhaseString(t *testing.T) {
	if Running.String() != "running" || Over.String() != "over" {
		t.Error("unexpected phase names")
	}
}
