package snake

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/beatsnake/internal/core"
)

const (
	hudHeight    = 2
	footerHeight = 1
	hungerBarLen = 20
	helpLine     = "WASD moves the snake  P pause  R restart  Q quit"
)

// viewport maps world coordinates onto screen cells. Terminal cells are about
// twice as tall as they are wide, so one world unit spans half as many rows.
type viewport struct {
	cx, cy int
	scale  float64 // columns per world unit
}

func (g *Game) viewport(dst *core.Screen) (viewport, bool) {
	rows := dst.Height() - hudHeight - footerHeight
	cols := dst.Width()
	extent := g.scene.Camera.Extent

	// Keep a cell of margin on each side for the arena border.
	scale := math.Min(float64(cols-3)/(2*extent), float64(rows-3)/extent)
	if scale*extent < 8 {
		return viewport{}, false
	}
	return viewport{
		cx:    cols / 2,
		cy:    hudHeight + rows/2,
		scale: scale,
	}, true
}

func (v viewport) project(p core.Vec2) (int, int) {
	return v.cx + int(math.Round(p.X*v.scale)), v.cy - int(math.Round(p.Y*v.scale/2))
}

// Render draws the arena, snake, apples and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.renderFooter(dst)

	vp, ok := g.viewport(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderArena(dst, vp)
	g.renderApples(dst, vp)
	g.renderSnake(dst, vp)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("The snake %s. Score: %d", g.loss, g.score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Length: %d  Speed: %.2f", g.Title(), g.score, len(g.body), g.speed)
	dst.DrawText(0, 0, hud)

	// Beat pulse on the right: lit for the first half of an active beat.
	idx := g.clock.Index()
	pulse := "○"
	if g.track.Active(idx) && g.clock.Phase() < 0.5 {
		pulse = "●"
	}
	beat := fmt.Sprintf("♪ %s %d/%d ", pulse, idx+1, g.track.Count())
	if g.audioErr != nil {
		beat = "muted " + beat
	}
	dst.DrawTextColored(dst.Width()-len([]rune(beat)), 0, beat, core.ColorCyan)

	ratio := g.hunger / g.cfg.Hunger.Max
	filled := int(core.ClampF(ratio, 0, 1) * hungerBarLen)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", hungerBarLen-filled)
	dst.DrawText(0, 1, " Hunger ")
	dst.DrawTextColored(8, 1, bar, core.HeatColor(ratio))
	dst.DrawText(9+hungerBarLen, 1, fmt.Sprintf("%.1f/%.0f", g.hunger, g.cfg.Hunger.Max))
}

func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawTextColored(1, dst.Height()-1, helpLine, core.ColorGray)
}

func (g *Game) renderArena(dst *core.Screen, vp viewport) {
	half := g.cfg.Arena.HalfWidth
	x0, y0 := vp.project(core.Vec2{X: -half, Y: half})
	x1, y1 := vp.project(core.Vec2{X: half, Y: -half})
	dst.DrawBox(core.NewRect(x0-1, y0-1, x1-x0+3, y1-y0+3), core.ColorGray)
}

func (g *Game) renderApples(dst *core.Screen, vp viewport) {
	c := g.cfg.Apples
	mid := (c.MinZ + c.MaxZ) / 2
	for _, a := range g.apples {
		ax, ay := vp.project(a.Pos)
		for _, deco := range []struct {
			off core.Vec2
			sp  Sprite
		}{{a.Stem, g.scene.Stem}, {a.Leaf, g.scene.Leaf}} {
			x, y := vp.project(a.Pos.Add(deco.off))
			if x != ax || y != ay {
				dst.SetColored(x, y, deco.sp.Glyph, deco.sp.Color)
			}
		}

		// Apples sinking below the midpoint of their bob are drawn dimmer.
		color := g.scene.Apple.Color
		if a.Depth < mid {
			color = dim(color)
		}
		dst.SetColored(ax, ay, g.scene.Apple.Glyph, color)
	}
}

func (g *Game) renderSnake(dst *core.Screen, vp viewport) {
	for i := len(g.body) - 1; i > 0; i-- {
		x, y := vp.project(g.body[i].Pos)
		dst.SetColored(x, y, g.scene.Body.Glyph, g.scene.Body.Color)
	}

	head := g.scene.Head.Color
	if ratio := g.hunger / g.cfg.Hunger.Max; ratio >= 0.5 {
		head = core.HeatColor(ratio)
	}
	x, y := vp.project(g.body[0].Pos)
	dst.SetColored(x, y, g.scene.Head.Glyph, head)
}

// renderOverlay draws a centered box with one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}

func dim(c core.Color) core.Color {
	switch c {
	case core.ColorBrightRed:
		return core.ColorRed
	case core.ColorBrightGreen:
		return core.ColorGreen
	case core.ColorBrightYellow:
		return core.ColorYellow
	case core.ColorBrightBlue:
		return core.ColorBlue
	case core.ColorBrightMagenta:
		return core.ColorMagenta
	case core.ColorBrightCyan:
		return core.ColorCyan
	case core.ColorBrightWhite:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}
