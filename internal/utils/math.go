package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	switch {
	case v > 0:
		return math.Max(v-step, 0)
	case v < 0:
		return math.Min(v+step, 0)
	}
	return 0
}
