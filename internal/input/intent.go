package input

// Intent is the snapshot of player intents sampled once at the start of a tick.
type Intent struct {
	Accelerate bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
	Fire       bool
}

// EdgeLatch turns a held button into a single action per press.
type EdgeLatch struct {
	active bool
}

// Rising reports true only when pressed goes from false to true.
func (l *EdgeLatch) Rising(pressed bool) bool {
	fired := pressed && !l.active
	l.active = pressed
	return fired
}
