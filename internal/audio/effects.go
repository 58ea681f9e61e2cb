// Package audio synthesizes short sound effects for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32 // xorshift state for WaveNoise
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x9E3779B9,
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
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/math.MaxUint32*2 - 1
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one enveloped oscillator note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 2
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// notes plays tones one after another.
func notes(d time.Duration, wave WaveType, rate beep.SampleRate, freqs ...float64) beep.Streamer {
	seq := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		seq[i] = tone(f, d, wave, rate)
	}
	return beep.Seq(seq...)
}

// EventSound returns the effect for an event, or nil for silent events.
// Higher brick rows ring at a higher pitch.
func EventSound(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev.Kind {
	case core.EventLaunch:
		return newVolume(notes(45*time.Millisecond, WaveSquare, rate, 440, 660), 0.25)
	case core.EventWall:
		return newVolume(tone(330, 35*time.Millisecond, WaveSine, rate), 0.35)
	case core.EventPaddle:
		return newVolume(tone(220, 60*time.Millisecond, WaveSquare, rate), 0.25)
	case core.EventBrick:
		freq := 1046.5 / (1 + 0.12*float64(ev.Row))
		return beep.Mix(
			newVolume(tone(freq, 90*time.Millisecond, WaveSine, rate), 0.35),
			newVolume(tone(freq*1.5, 60*time.Millisecond, WaveSine, rate), 0.12),
		)
	case core.EventLifeLost:
		return beep.Mix(
			newVolume(tone(110, 300*time.Millisecond, WaveSaw, rate), 0.3),
			newVolume(tone(0, 120*time.Millisecond, WaveNoise, rate), 0.15),
		)
	case core.EventLevelComplete:
		return newVolume(notes(90*time.Millisecond, WaveSquare, rate, 1046.5, 1318.5, 1568, 2093), 0.2)
	case core.EventGameOver:
		return newVolume(notes(160*time.Millisecond, WaveSquare, rate, 330, 262, 196, 131), 0.25)
	}
	return nil
}
