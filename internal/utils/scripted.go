package utils

// ScriptedRandom replays fixed draws for tests.
// Once a script is exhausted it keeps returning the fallback values,
// which by default never pass a spawn or resupply chance.
type ScriptedRandom struct {
	Floats        []float64
	Ints          []int
	FallbackFloat float64
	FallbackInt   int

	floatPos int
	intPos   int
}

// NewScriptedRandom creates a source that replays floats and falls back to 0.999.
func NewScriptedRandom(floats ...float64) *ScriptedRandom {
	return &ScriptedRandom{Floats: floats, FallbackFloat: 0.999}
}

func (s *ScriptedRandom) Float64() float64 {
	if s.floatPos < len(s.Floats) {
		v := s.Floats[s.floatPos]
		s.floatPos++
		return v
	}
	return s.FallbackFloat
}

func (s *ScriptedRandom) Intn(n int) int {
	v := s.FallbackInt
	if s.intPos < len(s.Ints) {
		v = s.Ints[s.intPos]
		s.intPos++
	}
	if n > 0 {
		v %= n
	}
	return v
}

// Push appends more float draws to the script.
func (s *ScriptedRandom) Push(floats ...float64) {
	s.Floats = append(s.Floats, floats...)
}

// PushInts appends more integer draws to the script.
func (s *ScriptedRandom) PushInts(ints ...int) {
	s.Ints = append(s.Ints, ints...)
}

// Remaining reports how many scripted floats have not been consumed.
func (s *ScriptedRandom) Remaining() int {
	return len(s.Floats) - s.floatPos
}
