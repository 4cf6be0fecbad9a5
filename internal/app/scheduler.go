package app

import (
	"sync"
	"sync/atomic"
	"time"

	"go-car-shooter/internal/config"
)

// TickInterval is the fixed simulation step.
const TickInterval = time.Second / config.TicksPerSecond

// FrameScheduler runs one tick per host frame. Ebiten calls Update at TPS,
// so the host loop is the clock and Frame is called from it.
type FrameScheduler struct {
	tick    func()
	stopped atomic.Bool
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) Start(tick func()) {
	s.tick = tick
}

// Frame runs one tick. It returns false once the scheduler is stopped.
func (s *FrameScheduler) Frame() bool {
	if s.stopped.Load() {
		return false
	}
	if s.tick != nil {
		s.tick()
	}
	return true
}

func (s *FrameScheduler) Stop() {
	s.stopped.Store(true)
}

func (s *FrameScheduler) Stopped() bool {
	return s.stopped.Load()
}

// TickerScheduler drives ticks from its own goroutine at a fixed interval.
// Used by frontends without a frame loop of their own.
type TickerScheduler struct {
	interval time.Duration
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = TickInterval
	}
	return &TickerScheduler{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the tick loop. Calling it twice has no effect.
func (s *TickerScheduler) Start(tick func()) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.loop(tick)
}

// Stop halts the loop and waits for the tick in flight to finish.
// Must not be called from inside a tick.
func (s *TickerScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

func (s *TickerScheduler) loop(tick func()) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			// stop wins over a tick that became ready at the same time
			select {
			case <-s.stopChan:
				return
			default:
			}
			tick()
		}
	}
}
