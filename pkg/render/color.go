// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the palette used to draw the arena.
type FieldColors struct {
	Background   color.RGBA
	RoadLine     color.RGBA
	Vehicle      color.RGBA
	Wheel        color.RGBA
	Windshield   color.RGBA
	Turret       color.RGBA
	Projectile   color.RGBA
	TargetOuter  color.RGBA
	TargetInner  color.RGBA
	TargetHealth color.RGBA
	SpeedLine    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales c by alpha in [0, 1]. Colors are premultiplied, so every channel is scaled.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
