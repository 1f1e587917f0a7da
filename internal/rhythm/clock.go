package rhythm

// BeatClock follows song position and reports when a new beat starts.
// It is advanced by caller-supplied elapsed time, never by the wall clock.
type BeatClock struct {
	track *Track
	timer float64
	index int
}

// NewBeatClock creates a clock positioned at beat 0.
func NewBeatClock(t *Track) *BeatClock {
	return &BeatClock{track: t}
}

// Restart rewinds the song position to zero. The recorded beat index is
// kept so a restart landing on a different beat still reports it as new.
func (c *BeatClock) Restart() {
	c.timer = 0
}

// Advance moves the song position forward.
func (c *BeatClock) Advance(elapsed float64) {
	c.timer += elapsed
}

// Position returns the song position in seconds.
func (c *BeatClock) Position() float64 {
	return c.timer
}

// Index returns the most recently recorded beat index.
func (c *BeatClock) Index() int {
	return c.index
}

// Tick recomputes the beat index for the current position. When it differs
// from the recorded one, the new index is recorded and isNew is true.
func (c *BeatClock) Tick() (index int, isNew bool) {
	next := c.track.IndexAt(c.timer)
	if next == c.index {
		return c.index, false
	}
	c.index = next
	return next, true
}

// Phase returns how far into the current beat the song is, in [0, 1).
func (c *BeatClock) Phase() float64 {
	spb := c.track.SecondsPerBeat()
	p := c.timer/spb - float64(int64(c.timer/spb))
	if p < 0 {
		return 0
	}
	return p
}
