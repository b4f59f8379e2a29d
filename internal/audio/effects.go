package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	hitDuration    = 180 * time.Millisecond
	failDuration   = 300 * time.Millisecond
	missDuration   = 140 * time.Millisecond
	attackDuration = 5 * time.Millisecond

	// A4, the pitch of a score of 1. Each extra point is a semitone higher.
	basePitch = 440.0
)

// ScoreTone is a sine blip whose pitch rises with the score
func ScoreTone(rate beep.SampleRate, score int, volume float64) beep.Streamer {
	freq := basePitch * math.Pow(2, float64(score-1)/12)
	return shapedTone(rate, freq, hitDuration, volume)
}

// FailTone is a low flat tone for a hit that scored nothing
func FailTone(rate beep.SampleRate, volume float64) beep.Streamer {
	return shapedTone(rate, 110, failDuration, volume)
}

// MissTone is two falling notes
func MissTone(rate beep.SampleRate, volume float64) beep.Streamer {
	return beep.Seq(
		shapedTone(rate, 330, missDuration, volume),
		shapedTone(rate, 220, missDuration, volume),
	)
}

func shapedTone(rate beep.SampleRate, freq float64, duration time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(duration))
	}
	tone := beep.Take(rate.N(duration), sine)
	return newVolume(newFade(tone, rate.N(duration), rate.N(attackDuration)), volume)
}

// fade ramps in over attack samples and linearly out to silence at total
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newFade(s beep.Streamer, total, attack int) beep.Streamer {
	return &fade{streamer: s, attack: attack, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		} else if f.total > f.attack {
			vol = float64(f.total-f.position) / float64(f.total-f.attack)
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume goes through Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
