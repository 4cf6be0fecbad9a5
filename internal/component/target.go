package component

// Target is an enemy that drives in a straight line toward where the vehicle was at spawn time.
type Target struct {
	Position
	Heading float64 // фиксируется при появлении, не перенацеливается
	Speed   float64
	Health  int
	Size    float64 // сторона квадрата
}

func (t Target) HalfSize() float64 {
	return t.Size / 2
}
