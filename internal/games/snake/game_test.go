package snake

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/beatsnake/internal/audio"
	"github.com/vovakirdan/beatsnake/internal/config"
	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

type fakePlayback struct {
	stopped bool
}

func (p *fakePlayback) Stopped() bool { return p.stopped }

type fakePlayer struct {
	plays   int
	stops   int
	current *fakePlayback
	failErr error
}

func (f *fakePlayer) Play() (audio.Playback, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.plays++
	f.current = &fakePlayback{}
	return f.current, nil
}

func (f *fakePlayer) Stop() { f.stops++ }

// newTestGame builds a reset game on a 120 bpm track.
func newTestGame(t *testing.T, beats []bool, tweak func(*config.SnakeConfig)) (*Game, *fakePlayer) {
	t.Helper()
	track, err := rhythm.NewTrack(120, beats)
	if err != nil {
		t.Fatalf("NewTrack() failed: %v", err)
	}
	cfg := config.DefaultSnakeConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	fp := &fakePlayer{}
	g, err := New(cfg, track, fp)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})
	return g, fp
}

func near(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestResetState(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	snap := g.Snapshot()

	if snap.Length != 1 || snap.HeadX != 0 || snap.HeadY != 0 || snap.Dir != DirRight {
		t.Errorf("unexpected start: %+v", snap)
	}
	if snap.Phase != PhaseActive || snap.Hunger != 0 || snap.Speed != 10 || snap.Pivots != 0 {
		t.Errorf("unexpected start: %+v", snap)
	}
	if snap.Apples != 0 {
		t.Errorf("inactive beat 0 should not spawn, got %d apples", snap.Apples)
	}
}

func TestPivotOvershootCarriesOntoNewHeading(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)

	seq := g.pivots.Push(Pivot{Pos: core.Vec2{X: 2}, Dir: DirUp})
	g.body[0].pending = pivotRef{seq: seq, ok: true}

	g.Update(0.3)

	head := g.body[0]
	if !near(head.Pos, core.Vec2{X: 2, Y: 1}) {
		t.Errorf("head at %+v, expected (2, 1)", head.Pos)
	}
	if head.Dir != DirUp {
		t.Errorf("head heading %v, expected up", head.Dir)
	}
	if g.pivots.Len() != 0 {
		t.Errorf("single-segment tail should release the pivot, %d left", g.pivots.Len())
	}
}

func TestPivotReachedExactly(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)

	seq := g.pivots.Push(Pivot{Pos: core.Vec2{X: 2.5}, Dir: DirDown})
	g.body[0].pending = pivotRef{seq: seq, ok: true}

	g.Update(0.25)

	head := g.body[0]
	if !near(head.Pos, core.Vec2{X: 2.5}) || head.Dir != DirDown {
		t.Errorf("head at %+v heading %v, expected (2.5, 0) heading down", head.Pos, head.Dir)
	}

	g.Update(0.1)
	if !near(g.body[0].Pos, core.Vec2{X: 2.5, Y: -1}) {
		t.Errorf("head at %+v, expected (2.5, -1)", g.body[0].Pos)
	}
}

func TestTurnGuard(t *testing.T) {
	tests := []struct {
		name    string
		held    []core.Action
		wantDir Direction
		wantPos core.Vec2
	}{
		{"nothing held", nil, DirRight, core.Vec2{X: 3}},
		{"reverse ignored", []core.Action{core.ActionLeft}, DirRight, core.Vec2{X: 3}},
		{"same heading ignored", []core.Action{core.ActionRight}, DirRight, core.Vec2{X: 3}},
		{"two held ignored", []core.Action{core.ActionUp, core.ActionDown}, DirRight, core.Vec2{X: 3}},
		{"turn up", []core.Action{core.ActionUp}, DirUp, core.Vec2{Y: 3}},
		{"turn down", []core.Action{core.ActionDown}, DirDown, core.Vec2{Y: -3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, []bool{false}, nil)
			for _, a := range tc.held {
				if !g.HandleInput(core.Press(a)) {
					t.Fatalf("direction %v should be consumed", a)
				}
			}
			g.Update(0.3)

			head := g.body[0]
			if head.Dir != tc.wantDir || !near(head.Pos, tc.wantPos) {
				t.Errorf("head at %+v heading %v, expected %+v heading %v", head.Pos, head.Dir, tc.wantPos, tc.wantDir)
			}
		})
	}
}

func TestReleasedKeyStopsProposingTurns(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)

	g.HandleInput(core.Press(core.ActionUp))
	g.HandleInput(core.Release(core.ActionUp))
	g.Update(0.1)

	if g.body[0].Dir != DirRight {
		t.Errorf("released key should not turn, heading %v", g.body[0].Dir)
	}
}

func TestSegmentsFollowPivotsInOrder(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	for range 3 {
		g.grow()
	}
	for i, s := range g.body {
		if want := (core.Vec2{X: -2 * float64(i)}); !near(s.Pos, want) {
			t.Fatalf("segment %d at %+v, expected %+v", i, s.Pos, want)
		}
	}

	g.HandleInput(core.Press(core.ActionUp))
	g.Update(0.05)
	g.HandleInput(core.Release(core.ActionUp))
	for range 3 {
		g.Update(0.1)
	}
	g.HandleInput(core.Press(core.ActionLeft))
	g.Update(0.07)
	g.HandleInput(core.Release(core.ActionLeft))

	// Uneven frames must not change where anyone turns.
	steps := []float64{0.013, 0.031, 0.047, 0.022}
	for i := 0; g.pivots.Len() > 0; i++ {
		if i > 500 {
			t.Fatal("tail never consumed the pivots")
		}
		if g.pivots.Len() > 2 {
			t.Fatalf("queue grew to %d pivots", g.pivots.Len())
		}
		g.Update(steps[i%len(steps)])
		if g.Phase() != PhaseActive {
			t.Fatalf("session ended early: %v", g.Loss())
		}
	}

	head := g.body[0]
	for i, s := range g.body {
		want := head.Pos.Add(core.Vec2{X: 2 * float64(i)})
		if !near(s.Pos, want) {
			t.Errorf("segment %d at %+v, expected %+v", i, s.Pos, want)
		}
		if s.Dir != DirLeft {
			t.Errorf("segment %d heading %v, expected left", i, s.Dir)
		}
		if s.pending.ok {
			t.Errorf("segment %d still has a pending pivot", i)
		}
	}
	if math.Abs(head.Pos.Y-3.5) > 1e-9 {
		t.Errorf("final leg at y=%v, expected 3.5", head.Pos.Y)
	}
}

func TestEatGrowsFromTail(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)

	seq := g.pivots.Push(Pivot{Pos: core.Vec2{X: 10}, Dir: DirUp})
	g.body[0].pending = pivotRef{seq: seq, ok: true}
	g.apples = append(g.apples, &Apple{Pos: core.Vec2{X: 0.1}})
	g.hunger = 1

	g.Update(0.01)

	snap := g.Snapshot()
	if snap.Score != 1 || snap.Length != 2 || snap.Apples != 0 {
		t.Fatalf("expected one apple eaten: %+v", snap)
	}
	if math.Abs(snap.Speed-10.05) > 1e-9 || math.Abs(snap.HungerRate-1.005) > 1e-9 {
		t.Errorf("speed %v rate %v, expected 10.05 and 1.005", snap.Speed, snap.HungerRate)
	}
	// Restore clamps at zero, then this frame's growth is added.
	if math.Abs(snap.Hunger-1.005*0.01) > 1e-9 {
		t.Errorf("hunger = %v, expected %v", snap.Hunger, 1.005*0.01)
	}

	tail := g.body[1]
	if !near(tail.Pos, core.Vec2{X: 0.1 - 2}) || tail.Dir != DirRight {
		t.Errorf("new segment at %+v heading %v", tail.Pos, tail.Dir)
	}
	if tail.pending != g.body[0].pending {
		t.Error("new segment should inherit the tail's pending pivot")
	}
}

func TestEatSeveralApplesInOneFrame(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	g.apples = append(g.apples,
		&Apple{Pos: core.Vec2{X: 0.1}},
		&Apple{Pos: core.Vec2{X: 0.3, Y: 0.2}},
		&Apple{Pos: core.Vec2{X: 5, Y: 5}},
	)
	g.hunger = 4

	g.Update(0.01)

	snap := g.Snapshot()
	if snap.Score != 2 || snap.Length != 3 || snap.Apples != 1 {
		t.Errorf("expected two apples eaten and one left: %+v", snap)
	}
}

func TestApplesAgeAndExpire(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, func(c *config.SnakeConfig) {
		c.Movement.StartSpeed = 1
	})
	g.apples = append(g.apples, &Apple{Pos: core.Vec2{X: 15, Y: 15}})

	g.Update(1.0)
	a := g.apples[0]
	if a.Age != 1.0 {
		t.Errorf("age = %v, expected 1.0", a.Age)
	}
	if a.Depth < 0.5 || a.Depth > 1.5 {
		t.Errorf("depth %v outside bob range", a.Depth)
	}

	g.Update(1.0)
	if len(g.apples) != 1 {
		t.Fatal("apple at exactly its lifetime should remain")
	}
	g.Update(0.1)
	if len(g.apples) != 0 {
		t.Error("apple past its lifetime should be gone")
	}
}

func TestSpawnedApplesStayInArena(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	for range 200 {
		g.spawnApple()
	}
	for _, a := range g.apples {
		if math.Abs(a.Pos.X) > 19 || math.Abs(a.Pos.Y) > 19 {
			t.Fatalf("apple outside arena at %+v", a.Pos)
		}
		if a.Yaw < 0 || a.Yaw >= 2*math.Pi {
			t.Fatalf("yaw %v outside [0, 2pi)", a.Yaw)
		}
		if math.Abs(a.Stem.Len()-stemOffset.Len()) > 1e-9 {
			t.Fatalf("stem offset length changed: %v", a.Stem.Len())
		}
	}
}

func TestRhythmGatedSpawns(t *testing.T) {
	g, fp := newTestGame(t, []bool{true, false, true}, nil)

	if s := g.Snapshot().Spawned; s != 1 {
		t.Fatalf("active beat 0 should spawn at reset, spawned %d", s)
	}

	g.Update(0.01)
	if fp.plays != 1 {
		t.Fatalf("first frame should start the song, plays = %d", fp.plays)
	}

	steps := []struct {
		wantIndex   int
		wantSpawned int
	}{
		{1, 1}, // 0.5s: inactive
		{2, 2}, // 1.0s: active
		{0, 3}, // 1.5s: wraps to beat 0, active
	}
	for _, step := range steps {
		g.Update(0.5)
		snap := g.Snapshot()
		if snap.BeatIndex != step.wantIndex || snap.Spawned != step.wantSpawned {
			t.Errorf("beat %d spawned %d, expected beat %d spawned %d",
				snap.BeatIndex, snap.Spawned, step.wantIndex, step.wantSpawned)
		}
	}
}

func TestFinishedPassRewindsClock(t *testing.T) {
	g, fp := newTestGame(t, []bool{false}, nil)

	g.Update(0.01)
	g.Update(0.2)
	if pos := g.Snapshot().SongPos; math.Abs(pos-0.2) > 1e-9 {
		t.Fatalf("song position = %v, expected 0.2", pos)
	}

	fp.current.stopped = true
	g.Update(0.2)
	if fp.plays != 2 {
		t.Errorf("finished pass should start another, plays = %d", fp.plays)
	}
	if pos := g.Snapshot().SongPos; pos != 0 {
		t.Errorf("song position = %v, expected 0 after restart", pos)
	}
}

func TestAudioFailureFallsBackToSilence(t *testing.T) {
	g, fp := newTestGame(t, []bool{false}, nil)
	errNoDevice := errors.New("no device")
	fp.failErr = errNoDevice

	g.Update(0.01)
	if !errors.Is(g.AudioErr(), errNoDevice) {
		t.Fatalf("AudioErr() = %v, expected %v", g.AudioErr(), errNoDevice)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if row := screen.Row(0); !strings.Contains(row, "muted ♪") {
		t.Errorf("HUD should show the session is muted, got %q", row)
	}

	g.Update(0.2)
	if pos := g.Snapshot().SongPos; math.Abs(pos-0.2) > 1e-9 {
		t.Errorf("clock should keep running silently, position %v", pos)
	}
}

func TestLeavingArenaEndsGame(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)

	for range 25 {
		g.Update(0.1)
		if g.Phase() == PhaseGameOver {
			break
		}
	}

	if g.Loss() != LossArena {
		t.Fatalf("loss = %v, expected arena", g.Loss())
	}
	if g.body[0].Pos.X <= 19 {
		t.Errorf("head at %+v should be past the wall", g.body[0].Pos)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	g.body = append(g.body, &Segment{Dir: DirLeft, Pos: core.Vec2{X: 0.2}})

	g.Update(0)

	if g.Loss() != LossSelf {
		t.Errorf("loss = %v, expected self collision", g.Loss())
	}
}

func TestStarvation(t *testing.T) {
	g, fp := newTestGame(t, []bool{false}, func(c *config.SnakeConfig) {
		c.Movement.StartSpeed = 1
	})

	for range 19 {
		g.Update(0.5)
	}
	if g.Phase() != PhaseActive {
		t.Fatalf("hunger %v should not have ended the game yet", g.hunger)
	}

	g.Update(0.5)
	if g.Loss() != LossStarved || !g.State().GameOver {
		t.Fatalf("expected starvation at hunger %v", g.hunger)
	}
	if fp.stops == 0 {
		t.Error("game over should stop the song")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g, _ := newTestGame(t, []bool{true, true}, func(c *config.SnakeConfig) {
		c.Hunger.Max = 0.5
	})
	for g.Phase() == PhaseActive {
		g.Update(0.1)
	}
	before := g.Snapshot()

	if g.HandleInput(core.Press(core.ActionUp)) {
		t.Error("direction input should be ignored after game over")
	}
	for range 10 {
		g.Update(0.3)
	}

	if after := g.Snapshot(); after != before {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestPauseHoldsSimulation(t *testing.T) {
	g, fp := newTestGame(t, []bool{false}, nil)
	g.Update(0.1)

	if !g.HandleInput(core.Press(core.ActionPause)) {
		t.Fatal("pause should be consumed")
	}
	before := g.Snapshot()
	g.Update(0.5)
	if after := g.Snapshot(); after != before {
		t.Error("paused game should not advance")
	}
	if fp.stops != 1 {
		t.Errorf("pause should stop the song, stops = %d", fp.stops)
	}

	g.HandleInput(core.Press(core.ActionPause))
	g.Update(0.1)
	if g.Snapshot().Frame != before.Frame+1 {
		t.Error("unpaused game should advance")
	}
	if fp.plays != 2 {
		t.Errorf("resume should start a new pass, plays = %d", fp.plays)
	}
}

func TestNonGameActionsNotConsumed(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	for _, a := range []core.Action{core.ActionQuit, core.ActionRestart, core.ActionConfirm} {
		if g.HandleInput(core.Press(a)) {
			t.Errorf("%v should not be consumed", a)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	track := rhythm.Default()

	newGame := func() *Game {
		g, err := New(config.DefaultSnakeConfig(), track, nil)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		g.Reset(cfg)
		return g
	}
	g1, g2 := newGame(), newGame()

	for i := range 120 {
		for _, g := range []*Game{g1, g2} {
			switch i {
			case 10:
				g.HandleInput(core.Press(core.ActionUp))
			case 20:
				g.HandleInput(core.Release(core.ActionUp))
				g.HandleInput(core.Press(core.ActionLeft))
			case 30:
				g.HandleInput(core.Release(core.ActionLeft))
			}
			g.Update(1.0 / 60)
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Fatalf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if g1.Snapshot().Spawned == 0 {
		t.Error("default track should have spawned apples")
	}
	for i := range g1.apples {
		if *g1.apples[i] != *g2.apples[i] {
			t.Errorf("apple %d differs: %+v vs %+v", i, g1.apples[i], g2.apples[i])
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(config.DefaultSnakeConfig(), nil, nil); err == nil {
		t.Error("nil track should fail")
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Hunger.Max = 0
	if _, err := New(cfg, rhythm.Default(), nil); err == nil {
		t.Error("invalid config should fail")
	}

	// Eating must never raise hunger, and a fresh segment must not bite the head.
	cfg = config.DefaultSnakeConfig()
	cfg.Hunger.Restore = -3
	cfg.Body.Gap = 0
	if _, err := New(cfg, rhythm.Default(), nil); err == nil {
		t.Error("negative restore with zero gap should fail")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, []bool{true}, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Beat Snake", "Hunger", "WASD moves the snake", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.end(LossStarved)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "starved") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderBeatPulse(t *testing.T) {
	g, _ := newTestGame(t, []bool{true}, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if row := screen.Row(0); !strings.Contains(row, "♪ ● 1/1") {
		t.Errorf("pulse should be lit at the start of an active beat: %q", row)
	}

	g.clock.Advance(0.3) // 120 bpm: 60% into the beat
	g.Render(screen)
	if row := screen.Row(0); !strings.Contains(row, "♪ ○ 1/1") {
		t.Errorf("pulse should fade late in the beat: %q", row)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, []bool{false}, nil)
	screen := core.NewScreen(20, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
}
