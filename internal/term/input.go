package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/input"
	"go-car-shooter/internal/interfaces"
)

// Terminals report key presses and auto-repeats but never releases,
// so a press holds its action for a few ticks and repeats keep it alive.
const HoldTicks = 6

// ActionFor maps a terminal key to a gameplay action.
func ActionFor(key tcell.Key, ch rune) (input.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return input.Accelerate, true
	case tcell.KeyDown:
		return input.Brake, true
	case tcell.KeyLeft:
		return input.TurnLeft, true
	case tcell.KeyRight:
		return input.TurnRight, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return input.Accelerate, true
		case 's', 'S':
			return input.Brake, true
		case 'a', 'A':
			return input.TurnLeft, true
		case 'd', 'D':
			return input.TurnRight, true
		case ' ':
			return input.Fire, true
		}
	}
	return 0, false
}

// Input reads tcell events and feeds a HoldTracker, which the runner samples each tick.
type Input struct {
	screen     tcell.Screen
	tracker    *input.HoldTracker
	controller interfaces.Controller
	canRestart func() bool
	log        zerolog.Logger
}

func NewInput(screen tcell.Screen, tracker *input.HoldTracker, controller interfaces.Controller, canRestart func() bool, logger zerolog.Logger) *Input {
	return &Input{
		screen:     screen,
		tracker:    tracker,
		controller: controller,
		canRestart: canRestart,
		log:        logger.With().Str("component", "input").Logger(),
	}
}

// Run blocks until the user quits or the screen is finalized.
func (in *Input) Run() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		if !in.handle(ev) {
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		in.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			in.log.Info().Msg("quit requested")
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			if in.canRestart == nil || in.canRestart() {
				in.tracker.Release()
				in.controller.Reset()
			}
			return true
		}
		if a, ok := ActionFor(ev.Key(), ev.Rune()); ok {
			in.tracker.Press(a)
		}
	}
	return true
}
