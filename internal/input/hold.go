package input

import "sync"

// Action — одно из намерений игрока.
type Action int

const (
	Accelerate Action = iota
	Brake
	TurnLeft
	TurnRight
	Fire
	actionCount
)

// HoldTracker emulates held keys for backends that only report presses
// (terminals send repeats but never a release). A press keeps an action active
// for holdTicks samples and every repeat refreshes it. Fire is held the same way,
// so auto-repeat of a held key reaches the edge latch as one continuous press.
type HoldTracker struct {
	mu        sync.Mutex
	holdTicks int
	remaining [actionCount]int
}

func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{holdTicks: holdTicks}
}

// Press registers a key press. Safe to call from the input goroutine.
func (h *HoldTracker) Press(a Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if a < 0 || a >= actionCount {
		return
	}
	h.remaining[a] = h.holdTicks
	// газ и тормоз взаимоисключающие
	switch a {
	case Accelerate:
		h.remaining[Brake] = 0
	case Brake:
		h.remaining[Accelerate] = 0
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remaining = [actionCount]int{}
}

// Sample returns the current intent and ages every held action by one tick.
func (h *HoldTracker) Sample() Intent {
	h.mu.Lock()
	defer h.mu.Unlock()

	in := Intent{
		Accelerate: h.remaining[Accelerate] > 0,
		Brake:      h.remaining[Brake] > 0,
		TurnLeft:   h.remaining[TurnLeft] > 0,
		TurnRight:  h.remaining[TurnRight] > 0,
		Fire:       h.remaining[Fire] > 0,
	}
	for i := range h.remaining {
		if h.remaining[i] > 0 {
			h.remaining[i]--
		}
	}
	return in
}
