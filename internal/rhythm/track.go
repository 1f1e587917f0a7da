// Package rhythm models the beat table that gates apple spawning: a fixed
// tempo plus one on/off flag per beat. It also reads and writes the compact
// binary chunk the game loads at startup and the text source it is built from.
package rhythm

import (
	"errors"
	"fmt"
	"math"
)

// MaxBeats is the fixed capacity of the beat table in a chunk record.
const MaxBeats = 5000

var (
	ErrBadMagic     = errors.New("rhythm: bad chunk magic")
	ErrBadSize      = errors.New("rhythm: chunk size is not a whole number of records")
	ErrNoRecords    = errors.New("rhythm: chunk has no records")
	ErrTooManyBeats = fmt.Errorf("rhythm: beat count exceeds capacity of %d", MaxBeats)
	ErrNoBeats      = errors.New("rhythm: track has no beats")
	ErrBadBPM       = errors.New("rhythm: bpm must be positive")
)

// Track is an immutable fixed-tempo beat table.
type Track struct {
	bpm   uint32
	beats []bool
}

// NewTrack validates and copies a beat table.
func NewTrack(bpm uint32, beats []bool) (*Track, error) {
	if bpm == 0 {
		return nil, ErrBadBPM
	}
	if len(beats) == 0 {
		return nil, ErrNoBeats
	}
	if len(beats) > MaxBeats {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyBeats, len(beats))
	}
	cp := make([]bool, len(beats))
	copy(cp, beats)
	return &Track{bpm: bpm, beats: cp}, nil
}

// BPM returns the tempo in beats per minute.
func (t *Track) BPM() uint32 {
	return t.bpm
}

// Count returns the number of valid beats.
func (t *Track) Count() int {
	return len(t.beats)
}

// SecondsPerBeat returns 60 / bpm.
func (t *Track) SecondsPerBeat() float64 {
	return 60 / float64(t.bpm)
}

// Duration returns the length of one pass through the table in seconds.
func (t *Track) Duration() float64 {
	return t.SecondsPerBeat() * float64(len(t.beats))
}

// Active reports whether beat i spawns an apple. Indices wrap.
func (t *Track) Active(i int) bool {
	n := len(t.beats)
	return t.beats[((i%n)+n)%n]
}

// ActiveCount returns how many beats are set.
func (t *Track) ActiveCount() int {
	n := 0
	for _, b := range t.beats {
		if b {
			n++
		}
	}
	return n
}

// IndexAt returns the beat index for a song position in seconds:
// floor(pos / secondsPerBeat) mod count.
func (t *Track) IndexAt(pos float64) int {
	if pos < 0 {
		pos = 0
	}
	return int(uint64(math.Floor(pos/t.SecondsPerBeat())) % uint64(len(t.beats)))
}

// Pattern renders the table using the text source alphabet.
func (t *Track) Pattern() string {
	out := make([]byte, len(t.beats))
	for i, b := range t.beats {
		if b {
			out[i] = 'x'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
