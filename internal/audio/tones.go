package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-drops/internal/games/drops"
)

// WaveType is an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

// Cue timing.
const (
	blipDuration  = 70 * time.Millisecond
	buzzDuration  = 160 * time.Millisecond
	noteDuration  = 120 * time.Millisecond
	finalDuration = 320 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 40 * time.Millisecond
)

// oscillator produces a fixed-length wave.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer that plays one wave for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope spanning duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// goodSound is a short rising two-note blip.
func goodSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(noteE5, blipDuration, WaveSine, rate),
		tone(noteA5, blipDuration, WaveSine, rate),
	)
}

// badSound is a low muddy buzz.
func badSound(rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(buzzDuration), beep.Mix(
		withVolume(tone(140, buzzDuration, WaveSaw, rate), 0.7),
		withVolume(tone(0, buzzDuration, WaveNoise, rate), 0.2),
	))
}

// winSound is a rising major arpeggio.
func winSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(noteC5, noteDuration, WaveSquare, rate),
		tone(noteE5, noteDuration, WaveSquare, rate),
		tone(noteG5, noteDuration, WaveSquare, rate),
		tone(noteC6, finalDuration, WaveSquare, rate),
	)
}

// loseSound is a falling arpeggio.
func loseSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(noteG4, noteDuration, WaveSaw, rate),
		tone(noteE4, noteDuration, WaveSaw, rate),
		tone(noteC4, finalDuration, WaveSaw, rate),
	)
}

// CueStreamer returns the sound for cue at the given volume, or nil for an
// unknown cue.
func CueStreamer(cue drops.SoundCue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case drops.CueGood:
		s = goodSound(rate)
	case drops.CueBad:
		s = badSound(rate)
	case drops.CueWin:
		s = winSound(rate)
	case drops.CueLose:
		s = loseSound(rate)
	default:
		return nil
	}
	return withVolume(s, volume)
}

// CueLength returns how long the sound for cue plays.
func CueLength(cue drops.SoundCue) time.Duration {
	switch cue {
	case drops.CueGood:
		return 2 * blipDuration
	case drops.CueBad:
		return buzzDuration
	case drops.CueWin:
		return 3*noteDuration + finalDuration
	case drops.CueLose:
		return 2*noteDuration + finalDuration
	default:
		return 0
	}
}
