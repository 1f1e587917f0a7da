package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

const (
	clickDuration = 70 * time.Millisecond
	clickRelease  = 55 * time.Millisecond
	offbeatVolume = 0.15
)

// decay fades a streamer linearly to silence over its last release samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newDecay(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) *decay {
	return &decay{
		streamer: s,
		total:    rate.N(duration),
		release:  rate.N(release),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if remaining := d.total - d.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = d.streamer.Stream(samples)
	releaseStart := d.total - d.release
	for i := 0; i < n; i++ {
		if d.position >= releaseStart && d.release > 0 {
			vol := float64(d.total-d.position) / float64(d.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// volume wraps s at a linear gain. Zero or negative gain is silent.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// click returns a short decaying tone.
func click(rate beep.SampleRate, pitch, gain float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, pitch)
	if err != nil {
		return nil, err
	}
	return volume(newDecay(tone, clickDuration, clickRelease, rate), gain), nil
}

// BeatLoop synthesizes one pass of a track: a bright click on every active
// beat and a faint lower tick on every other beat. The pass lasts exactly
// track.Duration() seconds.
func BeatLoop(track *rhythm.Track, rate beep.SampleRate, pitch float64) (beep.Streamer, error) {
	spb := time.Duration(track.SecondsPerBeat() * float64(time.Second))
	beatSamples := rate.N(spb)
	clickSamples := min(rate.N(clickDuration), beatSamples)

	parts := make([]beep.Streamer, 0, track.Count()*2)
	for i := range track.Count() {
		var (
			s   beep.Streamer
			err error
		)
		if track.Active(i) {
			s, err = click(rate, pitch, 1.0)
		} else {
			s, err = click(rate, pitch/2, offbeatVolume)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(clickSamples, s), beep.Silence(beatSamples-clickSamples))
	}
	return beep.Seq(parts...), nil
}
