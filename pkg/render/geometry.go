package render

import (
	"math"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/utils"
)

// Segment — отрезок в экранных координатах.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DashSegments splits the line (x0,y0)-(x1,y1) into dashes of the given length separated by gap.
// The last dash is cut at the end point.
func DashSegments(x0, y0, x1, y1, dash, gap float64) []Segment {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || dash <= 0 {
		return nil
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length

	var out []Segment
	for pos := 0.0; pos < length; pos += dash + gap {
		end := math.Min(pos+dash, length)
		out = append(out, Segment{
			X0: x0 + ux*pos, Y0: y0 + uy*pos,
			X1: x0 + ux*end, Y1: y0 + uy*end,
		})
	}
	return out
}

// SpeedLines returns the streaks drawn behind a fast car. Nothing is drawn at or below the threshold.
// Each streak starts 50..150 px behind the car and extends half as far again.
func SpeedLines(v component.Vehicle, rng utils.Random) []Segment {
	if math.Abs(v.Speed) <= config.SpeedLinesThreshold {
		return nil
	}
	back := v.Heading + math.Pi
	bx, by := math.Cos(back), math.Sin(back)

	lines := make([]Segment, 0, config.SpeedLinesCount)
	for i := 0; i < config.SpeedLinesCount; i++ {
		dist := utils.Range(rng, 50, 150)
		ox, oy := bx*dist, by*dist
		lines = append(lines, Segment{
			X0: v.X + ox, Y0: v.Y + oy,
			X1: v.X + ox*1.5, Y1: v.Y + oy*1.5,
		})
	}
	return lines
}

// HealthBarWidth is the width of a target's health bar for the given health.
func HealthBarWidth(t component.Target) float64 {
	return t.Size * utils.Clamp(float64(t.Health)/config.TargetHealth, 0, 1)
}
