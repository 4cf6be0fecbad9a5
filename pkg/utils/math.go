// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ClampInt ограничивает v отрезком [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Point — клетка сетки.
type Point struct {
	X, Y int
}

// Line returns the grid cells from (x0, y0) to (x1, y1) inclusive (Bresenham).
func Line(x0, y0, x1, y1 int) []Point {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	points := make([]Point, 0, max(dx, -dy)+1)
	for {
		points = append(points, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
