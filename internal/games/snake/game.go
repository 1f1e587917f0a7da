// Package snake implements a rhythm-gated snake. The body moves continuously
// and turns only at pivots laid down by the head; apples appear on the beats
// of a rhythm track and must be eaten before hunger runs out.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/beatsnake/internal/audio"
	"github.com/vovakirdan/beatsnake/internal/config"
	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

// Phase is the session state. GameOver is terminal until Reset.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "active"
}

// LossReason records why a session ended.
type LossReason int

const (
	LossNone LossReason = iota
	LossArena
	LossSelf
	LossStarved
)

func (r LossReason) String() string {
	switch r {
	case LossArena:
		return "left the arena"
	case LossSelf:
		return "bit its own tail"
	case LossStarved:
		return "starved"
	default:
		return ""
	}
}

// Game is the snake controller. It is driven by HandleInput and Update from
// a single goroutine and never reads the wall clock.
type Game struct {
	cfg    config.SnakeConfig
	scene  Scene
	track  *rhythm.Track
	player audio.Player

	rng      *rand.Rand
	frame    uint64
	survived float64
	phase    Phase
	loss     LossReason
	paused   bool

	held   [4]bool // indexed by Direction
	body   []*Segment
	pivots PivotQueue
	apples []*Apple

	clock    *rhythm.BeatClock
	song     audio.Playback
	audioErr error

	speed      float64
	hunger     float64
	hungerRate float64
	score      int
	spawned    int
}

// New validates the configuration, resolves scene handles and returns a game
// ready for Reset. A nil player plays nothing.
func New(cfg config.SnakeConfig, track *rhythm.Track, player audio.Player) (*Game, error) {
	if track == nil {
		return nil, errors.New("snake: no rhythm track")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}
	scene, err := ResolveScene(cfg.Scene.Nodes)
	if err != nil {
		return nil, err
	}
	if player == nil {
		player = audio.Silent{}
	}
	return &Game{
		cfg:    cfg,
		scene:  scene,
		track:  track,
		player: player,
	}, nil
}

// ID returns the identifier scores are stored under.
func (g *Game) ID() string {
	return "beatsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Beat Snake"
}

// Reset starts a new session: a one-segment snake at the origin heading
// right, no pivots, no hunger, and the beat clock at beat 0.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.song != nil {
		g.player.Stop()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0
	g.survived = 0
	g.phase = PhaseActive
	g.loss = LossNone
	g.paused = false

	g.held = [4]bool{}
	g.pivots.Reset()
	g.body = []*Segment{{Dir: DirRight}}
	g.apples = nil

	g.clock = rhythm.NewBeatClock(g.track)
	g.song = nil
	g.audioErr = nil

	g.speed = g.cfg.Movement.StartSpeed
	g.hunger = 0
	g.hungerRate = g.cfg.Hunger.GrowthRate
	g.score = 0
	g.spawned = 0

	if g.track.Active(0) {
		g.spawnApple()
		g.spawned++
	}
}

// HandleInput updates held directions and the pause toggle. It reports
// whether the event was consumed.
func (g *Game) HandleInput(ev core.KeyEvent) bool {
	if d, ok := directionFor(ev.Action); ok {
		if g.phase == PhaseGameOver {
			return false
		}
		g.held[d] = ev.Down
		return true
	}

	if ev.Action == core.ActionPause && ev.Down && g.phase == PhaseActive {
		g.paused = !g.paused
		if g.paused && g.song != nil {
			// The next pass starts from the top when play resumes.
			g.player.Stop()
			g.song = nil
		}
		return true
	}
	return false
}

// Update advances the session by elapsed seconds.
func (g *Game) Update(elapsed float64) core.StepResult {
	if g.phase == PhaseGameOver || g.paused {
		return core.StepResult{State: g.State()}
	}
	elapsed = max(elapsed, 0)
	g.frame++
	g.survived += elapsed

	g.ageApples(elapsed)
	g.proposeTurn()
	g.advanceSegments(elapsed)
	g.checkEat()

	switch {
	case g.outOfArena():
		g.end(LossArena)
		return core.StepResult{State: g.State()}
	case g.hitSelf():
		g.end(LossSelf)
		return core.StepResult{State: g.State()}
	}

	g.tickSong(elapsed)

	g.hunger += g.hungerRate * elapsed
	if g.hunger >= g.cfg.Hunger.Max {
		g.end(LossStarved)
	}
	return core.StepResult{State: g.State()}
}

// tickSong keeps the beat clock locked to the song loop and spawns an apple
// on every new active beat. A finished pass starts the next one and rewinds
// the clock.
func (g *Game) tickSong(elapsed float64) {
	if g.song == nil || g.song.Stopped() {
		g.song = g.startSong()
		g.clock.Restart()
	} else {
		g.clock.Advance(elapsed)
	}

	if idx, isNew := g.clock.Tick(); isNew && g.track.Active(idx) {
		g.spawnApple()
		g.spawned++
	}
}

// startSong plays the next pass. An audio failure drops to silence for the
// rest of the session; AudioErr reports it.
func (g *Game) startSong() audio.Playback {
	pb, err := g.player.Play()
	if err == nil {
		return pb
	}
	g.audioErr = err
	g.player = audio.Silent{}
	pb, _ = g.player.Play()
	return pb
}

func (g *Game) end(reason LossReason) {
	g.phase = PhaseGameOver
	g.loss = reason
	g.player.Stop()
	g.song = nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Loss returns why the session ended, or LossNone while active.
func (g *Game) Loss() LossReason {
	return g.loss
}

// AudioErr returns the playback error that silenced the session, if any.
func (g *Game) AudioErr() error {
	return g.audioErr
}

// Close stops audio.
func (g *Game) Close() {
	g.player.Stop()
}

// Summary describes the session for the scoreboard.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Score:    g.score,
		Length:   len(g.body),
		Survived: g.survived,
		Loss:     g.loss.String(),
	}
}
