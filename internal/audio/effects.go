package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // изменение частоты за семпл
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep slides linearly from one frequency to another over the duration.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	slide := 0.0
	if samples > 0 {
		slide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		slide:    slide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	vol := 1.0
	if e.attackSamples > 0 && pos < e.attackSamples {
		vol = float64(pos) / float64(e.attackSamples)
	}
	releaseStart := e.totalSamples - e.releaseSamples
	if e.releaseSamples > 0 && pos >= releaseStart {
		vol = math.Min(vol, float64(e.totalSamples-pos)/float64(e.releaseSamples))
	}
	return math.Max(vol, 0)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// log2(0) = -Inf, поэтому нулевая громкость идёт отдельным случаем
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound generators. Each returns a finite stream ready for the mixer.

func CreateShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 70 * time.Millisecond
	osc := NewSweep(900, 500, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 40*time.Millisecond, rate), vol*0.4)
}

func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 50 * time.Millisecond
	osc := NewOscillator(220, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, time.Millisecond, 30*time.Millisecond, rate), vol*0.5)
}

func CreateExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 300 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 250*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(120, 40, d, WaveSine, rate), d, 5*time.Millisecond, 200*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.8)), vol)
}

func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 200 * time.Millisecond
	osc := NewSweep(150, 60, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 120*time.Millisecond, rate), vol*0.7)
}

// CreatePickupSound is a short pure tone for resupply.
func CreatePickupSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	const d = 120 * time.Millisecond
	sine, err := generators.SineTone(rate, 1320)
	if err != nil {
		return nil, err
	}
	tone := beep.Take(rate.N(d), sine)
	return newVolume(NewEnvelope(tone, d, 5*time.Millisecond, 60*time.Millisecond, rate), vol*0.5), nil
}

// CreateGameOverSound plays two falling notes.
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 250 * time.Millisecond
	first := NewEnvelope(NewOscillator(440, d, WaveSine, rate), d, 5*time.Millisecond, 100*time.Millisecond, rate)
	second := NewEnvelope(NewSweep(330, 220, 2*d, WaveSine, rate), 2*d, 5*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(beep.Seq(first, second), vol*0.8)
}
