package snake

import (
	"math"
	"slices"

	"github.com/vovakirdan/beatsnake/internal/core"
)

// Apple is a timed pickup. Stem and Leaf are decorative offsets from Pos,
// turned by Yaw, and travel with the apple.
type Apple struct {
	Pos   core.Vec2
	Yaw   float64
	Age   float64
	Depth float64
	Stem  core.Vec2
	Leaf  core.Vec2
}

var (
	stemOffset = core.Vec2{Y: 0.6}
	leafOffset = core.Vec2{X: 0.35, Y: 0.75}
)

func rotate(v core.Vec2, yaw float64) core.Vec2 {
	sin, cos := math.Sincos(yaw)
	return core.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// spawnApple places an apple uniformly inside the arena with a random yaw.
func (g *Game) spawnApple() {
	half := g.cfg.Arena.HalfWidth
	a := &Apple{
		Pos: core.Vec2{
			X: -half + g.rng.Float64()*2*half,
			Y: -half + g.rng.Float64()*2*half,
		},
		Yaw: g.rng.Float64() * 2 * math.Pi,
	}
	a.Stem = rotate(stemOffset, a.Yaw)
	a.Leaf = rotate(leafOffset, a.Yaw)
	a.Depth = g.appleDepth(0)
	g.apples = append(g.apples, a)
}

// appleDepth bobs between MinZ and MaxZ over one lifetime.
func (g *Game) appleDepth(age float64) float64 {
	c := g.cfg.Apples
	return c.MinZ + (c.MaxZ-c.MinZ)*math.Sin(age*math.Pi/c.Lifetime+math.Pi/8)
}

// ageApples advances every apple and drops the ones past their lifetime.
func (g *Game) ageApples(elapsed float64) {
	g.apples = slices.DeleteFunc(g.apples, func(a *Apple) bool {
		a.Age += elapsed
		a.Depth = g.appleDepth(a.Age)
		return a.Age > g.cfg.Apples.Lifetime
	})
}

// checkEat consumes every apple under the head. Overlaps are collected
// first and removed afterwards.
func (g *Game) checkEat() {
	head := g.body[0].Pos
	var eaten []*Apple
	for _, a := range g.apples {
		if core.Overlaps(head, a.Pos, g.cfg.Apples.PickupBound) {
			eaten = append(eaten, a)
		}
	}
	if len(eaten) == 0 {
		return
	}

	for range eaten {
		g.hunger = max(g.hunger-g.cfg.Hunger.Restore, 0)
		g.speed += g.cfg.Movement.SpeedStep
		g.hungerRate += g.cfg.Hunger.GrowthRateStep
		g.grow()
		g.score++
	}
	g.apples = slices.DeleteFunc(g.apples, func(a *Apple) bool {
		return slices.Contains(eaten, a)
	})
}
