package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw waveform.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer producing the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
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
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with attack/release shaping over duration.
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

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer to the given linear volume.
// math.Log2(0) is -Inf, so zero volume is handled by silencing.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a convenience for an enveloped oscillator at a volume.
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, vol float64) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, sampleRate)
	shaped := NewEnvelope(osc, duration, attack, release, sampleRate)
	return newVolume(shaped, vol)
}

// collectSound is a bright two-tone ding (E6 then B6).
func collectSound() beep.Streamer {
	return beep.Seq(
		tone(1318.51, WaveSine, 70*time.Millisecond, 3*time.Millisecond, 30*time.Millisecond, 0.35),
		tone(1975.53, WaveSine, 110*time.Millisecond, 3*time.Millisecond, 70*time.Millisecond, 0.30),
	)
}

// missSound is a short harsh low buzz.
func missSound() beep.Streamer {
	return tone(110.0, WaveSaw, 180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, 0.30)
}

// buttonSound is a tiny click for menu actions.
func buttonSound() beep.Streamer {
	return tone(880.0, WaveSquare, 35*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, 0.20)
}

// winSound is an ascending three-note chime (C6, E6, G6).
func winSound() beep.Streamer {
	return beep.Seq(
		tone(1046.50, WaveSquare, 120*time.Millisecond, 4*time.Millisecond, 60*time.Millisecond, 0.28),
		tone(1318.51, WaveSquare, 120*time.Millisecond, 4*time.Millisecond, 60*time.Millisecond, 0.28),
		tone(1567.98, WaveSquare, 220*time.Millisecond, 4*time.Millisecond, 160*time.Millisecond, 0.30),
	)
}
