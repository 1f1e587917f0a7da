package snake

import "github.com/vovakirdan/beatsnake/internal/core"

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Unit returns the unit vector for d. World +Y is up.
func (d Direction) Unit() core.Vec2 {
	switch d {
	case DirUp:
		return core.Vec2{Y: 1}
	case DirDown:
		return core.Vec2{Y: -1}
	case DirLeft:
		return core.Vec2{X: -1}
	default:
		return core.Vec2{X: 1}
	}
}

// directionFor maps a movement action to a heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// dirDistance is the signed distance still to travel along d from pos before
// reaching target. It is negative once target has been passed.
func dirDistance(d Direction, pos, target core.Vec2) float64 {
	switch d {
	case DirUp:
		return target.Y - pos.Y
	case DirDown:
		return pos.Y - target.Y
	case DirLeft:
		return pos.X - target.X
	default:
		return target.X - pos.X
	}
}

// Pivot is a turn point laid down by the head. Every segment behind the head
// reaches it in order and takes its heading.
type Pivot struct {
	Pos core.Vec2
	Dir Direction
}

// pivotRef names a queued pivot by sequence number.
type pivotRef struct {
	seq uint64
	ok  bool
}

// PivotQueue is a FIFO of pivots addressed by a monotonically increasing
// sequence number. Segments keep sequence numbers rather than pointers, so a
// pivot is released exactly once, when the tail passes it.
type PivotQueue struct {
	base  uint64 // sequence number of items[0]
	items []Pivot
}

// Push appends p and returns its sequence number.
func (q *PivotQueue) Push(p Pivot) uint64 {
	q.items = append(q.items, p)
	return q.base + uint64(len(q.items)-1)
}

// Get returns the pivot with the given sequence number, if still queued.
func (q *PivotQueue) Get(seq uint64) (Pivot, bool) {
	if seq < q.base || seq >= q.base+uint64(len(q.items)) {
		return Pivot{}, false
	}
	return q.items[seq-q.base], true
}

// Next returns the pivot queued right after seq, if there is one yet.
func (q *PivotQueue) Next(seq uint64) pivotRef {
	next := seq + 1
	if next < q.base || next >= q.base+uint64(len(q.items)) {
		return pivotRef{}
	}
	return pivotRef{seq: next, ok: true}
}

// PopThrough releases every pivot up to and including seq.
func (q *PivotQueue) PopThrough(seq uint64) {
	for len(q.items) > 0 && q.base <= seq {
		q.items = q.items[1:]
		q.base++
	}
	if len(q.items) == 0 {
		q.items = nil
	}
}

// Len returns the number of queued pivots.
func (q *PivotQueue) Len() int {
	return len(q.items)
}

// Reset empties the queue. Sequence numbers keep counting up.
func (q *PivotQueue) Reset() {
	q.base += uint64(len(q.items))
	q.items = nil
}
