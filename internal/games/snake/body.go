package snake

import "github.com/vovakirdan/beatsnake/internal/core"

// Segment is one link of the body chain. The head is element 0.
type Segment struct {
	Dir     Direction
	Pos     core.Vec2
	pending pivotRef
}

// proposeTurn lays down a pivot at the head when exactly one direction is
// held and it is neither the current heading nor its reverse.
func (g *Game) proposeTurn() {
	want, ok := g.heldDirection()
	if !ok {
		return
	}
	head := g.body[0]
	if want == head.Dir || want == head.Dir.Opposite() {
		return
	}

	seq := g.pivots.Push(Pivot{Pos: head.Pos, Dir: want})
	for _, s := range g.body {
		if !s.pending.ok {
			s.pending = pivotRef{seq: seq, ok: true}
		}
	}
}

// heldDirection returns the held direction when exactly one is held.
func (g *Game) heldDirection() (Direction, bool) {
	var (
		found Direction
		count int
	)
	for d, down := range g.held {
		if down {
			found = Direction(d)
			count++
		}
	}
	return found, count == 1
}

// advanceSegments moves every segment speed*elapsed along its heading, then
// resolves each pivot it reached or passed. Overshoot is carried onto the new
// heading, so a frame never loses or duplicates travel. The tail releases
// the pivots it consumes.
func (g *Game) advanceSegments(elapsed float64) {
	dist := g.speed * elapsed
	last := len(g.body) - 1

	for i, s := range g.body {
		s.Pos = s.Pos.Add(s.Dir.Unit().Scale(dist))

		for s.pending.ok {
			p, ok := g.pivots.Get(s.pending.seq)
			if !ok {
				s.pending = pivotRef{}
				break
			}
			remaining := dirDistance(s.Dir, s.Pos, p.Pos)
			if remaining > 0 {
				break
			}

			s.Dir = p.Dir
			s.Pos = p.Pos.Add(p.Dir.Unit().Scale(-remaining))

			consumed := s.pending.seq
			s.pending = g.pivots.Next(consumed)
			if i == last {
				g.pivots.PopThrough(consumed)
			}
		}
	}
}

// grow appends a segment gap units behind the tail. It inherits the tail's
// heading and next pivot so it follows the same path.
func (g *Game) grow() {
	tail := g.body[len(g.body)-1]
	g.body = append(g.body, &Segment{
		Dir:     tail.Dir,
		Pos:     tail.Pos.Sub(tail.Dir.Unit().Scale(g.cfg.Body.Gap)),
		pending: tail.pending,
	})
}

// hitSelf reports whether the head overlaps any other segment.
func (g *Game) hitSelf() bool {
	head := g.body[0].Pos
	for _, s := range g.body[1:] {
		if core.Overlaps(head, s.Pos, g.cfg.Body.SelfBound) {
			return true
		}
	}
	return false
}

// outOfArena reports whether the head left the square arena.
func (g *Game) outOfArena() bool {
	head := g.body[0].Pos
	half := g.cfg.Arena.HalfWidth
	return head.X > half || head.X < -half || head.Y > half || head.Y < -half
}
