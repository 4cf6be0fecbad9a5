// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — смещение за один тик
type Velocity struct {
	X, Y float64
}

// Field is the bounded play area, origin at the top-left corner.
type Field struct {
	Width, Height float64
}

func (f Field) Center() Position {
	return Position{X: f.Width / 2, Y: f.Height / 2}
}

// Outside reports whether p lies beyond the field by more than margin on any axis.
func (f Field) Outside(p Position, margin float64) bool {
	return p.X < -margin || p.X > f.Width+margin ||
		p.Y < -margin || p.Y > f.Height+margin
}

// Clamp keeps a body with the given half extents fully inside the field.
func (f Field) Clamp(p Position, halfW, halfH float64) Position {
	return Position{
		X: clamp(p.X, halfW, f.Width-halfW),
		Y: clamp(p.Y, halfH, f.Height-halfH),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
