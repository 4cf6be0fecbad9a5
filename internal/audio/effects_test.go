package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/event"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(440, 100*time.Millisecond, wave, testRate))
		if len(samples) != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), testRate.N(100*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or not mono: %v", wave, i, s)
			}
		}
	}
}

func TestSquareWaveAlternates(t *testing.T) {
	// 1000 Гц при 8000 семплов: 4 вверх, 4 вниз
	samples := drain(t, NewOscillator(1000, time.Millisecond, WaveSquare, testRate))
	want := []float64{1, 1, 1, 1, -1, -1, -1, -1}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i][0] != want[i] {
			t.Errorf("sample %d = %g, want %g", i, samples[i][0], want[i])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	const d = 100 * time.Millisecond
	// постоянный сигнал 1.0, чтобы увидеть саму огибающую
	flat := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	samples := drain(t, NewEnvelope(flat, d, 10*time.Millisecond, 20*time.Millisecond, testRate))

	if len(samples) != testRate.N(d) {
		t.Fatalf("envelope length %d, want %d", len(samples), testRate.N(d))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %g", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain = %g, want 1", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("release tail = %g, want a small positive value", last)
	}
}

func TestSoundsAreFinite(t *testing.T) {
	pickup, err := CreatePickupSound(testRate, 1)
	if err != nil {
		t.Fatalf("pickup: %v", err)
	}
	sounds := map[string]beep.Streamer{
		"shot":      CreateShotSound(testRate, 1),
		"hit":       CreateHitSound(testRate, 1),
		"explosion": CreateExplosionSound(testRate, 1),
		"crash":     CreateCrashSound(testRate, 1),
		"pickup":    pickup,
		"game over": CreateGameOverSound(testRate, 1),
	}
	for name, s := range sounds {
		samples := drain(t, s)
		if len(samples) == 0 {
			t.Errorf("%s: empty sound", name)
		}
		for _, v := range samples {
			if math.IsNaN(v[0]) || math.IsInf(v[0], 0) {
				t.Fatalf("%s: invalid sample %v", name, v)
			}
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	for _, v := range drain(t, CreateHitSound(testRate, 0)) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("expected silence, got %v", v)
		}
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(0.5, zerolog.Nop())
	d := event.NewDispatcher()
	sm.Attach(d)

	// без Initialize события просто игнорируются
	d.Dispatch(event.Event{Type: event.ShotFired})
	d.Dispatch(event.Event{Type: event.GameOver})
	sm.Cleanup()
}
