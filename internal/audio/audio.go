// Package audio plays the song loop that drives the beat clock. The game only
// needs to know whether the current pass is still playing; everything else
// (device setup, decoding, synthesis) stays behind Player.
package audio

import (
	"sync/atomic"
)

// Playback is a handle to one pass of the song loop.
type Playback interface {
	// Stopped reports whether the pass has finished.
	Stopped() bool
}

// Player starts passes of the song loop.
type Player interface {
	Play() (Playback, error)
	// Stop halts every pass in flight.
	Stop()
}

// flagPlayback is stopped once its flag is set, usually from the audio goroutine.
type flagPlayback struct {
	stopped atomic.Bool
}

func (p *flagPlayback) Stopped() bool {
	return p.stopped.Load()
}

func (p *flagPlayback) stop() {
	p.stopped.Store(true)
}

// Silent is a Player with no output device. Its single pass never ends, so
// the beat clock runs uninterrupted.
type Silent struct{}

// Play returns a playback that never stops.
func (Silent) Play() (Playback, error) {
	return &flagPlayback{}, nil
}

// Stop does nothing.
func (Silent) Stop() {}
