package component

// Phase — состояние игровой сессии
type Phase int

const (
	Running Phase = iota
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Session holds the counters that survive between ticks.
type Session struct {
	Score int
	Ammo  int
	Phase Phase
}
