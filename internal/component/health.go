package component

// Health — компонент здоровья
type Health struct {
	Current int
	Max     int
}

func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Damage lowers health, never below zero.
func (h *Health) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
