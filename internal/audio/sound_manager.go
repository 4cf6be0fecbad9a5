package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays a short effect for each gameplay event.
// Until Initialize succeeds every call is a no-op, so the game runs without audio hardware.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         zerolog.Logger
}

func NewSoundManager(volume float64, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Attach subscribes the manager to the events it voices.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.ShotFired, event.TargetHit, event.TargetDestroyed,
		event.VehicleHit, event.AmmoResupplied, event.GameOver,
	)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := sm.soundFor(e.Type)
	if err != nil {
		sm.log.Warn().Err(err).Str("event", string(e.Type)).Msg("sound generation failed")
		return
	}
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) soundFor(t event.EventType) (beep.Streamer, error) {
	switch t {
	case event.ShotFired:
		return CreateShotSound(sampleRate, sm.volume), nil
	case event.TargetHit:
		return CreateHitSound(sampleRate, sm.volume), nil
	case event.TargetDestroyed:
		return CreateExplosionSound(sampleRate, sm.volume), nil
	case event.VehicleHit:
		return CreateCrashSound(sampleRate, sm.volume), nil
	case event.AmmoResupplied:
		return CreatePickupSound(sampleRate, sm.volume)
	case event.GameOver:
		return CreateGameOverSound(sampleRate, sm.volume), nil
	}
	return nil, nil
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
