package snake

// Snapshot captures the simulation state for determinism testing and replay.
type Snapshot struct {
	Frame      uint64
	Phase      Phase
	Loss       LossReason
	Paused     bool
	Score      int
	Length     int
	HeadX      float64
	HeadY      float64
	Dir        Direction
	Speed      float64
	Hunger     float64
	HungerRate float64
	Apples     int
	Spawned    int // Apples spawned this session, eaten or not
	Pivots     int
	BeatIndex  int
	SongPos    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.body[0]
	return Snapshot{
		Frame:      g.frame,
		Phase:      g.phase,
		Loss:       g.loss,
		Paused:     g.paused,
		Score:      g.score,
		Length:     len(g.body),
		HeadX:      head.Pos.X,
		HeadY:      head.Pos.Y,
		Dir:        head.Dir,
		Speed:      g.speed,
		Hunger:     g.hunger,
		HungerRate: g.hungerRate,
		Apples:     len(g.apples),
		Spawned:    g.spawned,
		Pivots:     g.pivots.Len(),
		BeatIndex:  g.clock.Index(),
		SongPos:    g.clock.Position(),
	}
}
