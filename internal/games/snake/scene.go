package snake

import (
	"fmt"

	"github.com/vovakirdan/beatsnake/internal/config"
	"github.com/vovakirdan/beatsnake/internal/core"
)

// Sprite is how one scene entity is drawn on the terminal.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Camera defines the viewport: Extent is the world half-width kept in view.
type Camera struct {
	Extent float64
}

// Scene holds the resolved handles for everything the game draws.
type Scene struct {
	Head  Sprite
	Body  Sprite
	Apple Sprite
	Stem  Sprite
	Leaf  Sprite

	Camera Camera
}

var colorNames = map[string]core.Color{
	"":               core.ColorDefault,
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ResolveScene looks up every required node by name once, so rendering never
// touches the name table. A missing or malformed node is an error.
func ResolveScene(nodes map[string]config.SceneNode) (Scene, error) {
	var s Scene
	sprites := []struct {
		name string
		dst  *Sprite
	}{
		{"head", &s.Head},
		{"body", &s.Body},
		{"apple", &s.Apple},
		{"stem", &s.Stem},
		{"leaf", &s.Leaf},
	}

	for _, sp := range sprites {
		node, ok := nodes[sp.name]
		if !ok {
			return Scene{}, fmt.Errorf("scene: missing node %q", sp.name)
		}
		glyph := []rune(node.Glyph)
		if len(glyph) != 1 {
			return Scene{}, fmt.Errorf("scene: node %q glyph must be a single character, got %q", sp.name, node.Glyph)
		}
		color, ok := colorNames[node.Color]
		if !ok {
			return Scene{}, fmt.Errorf("scene: node %q has unknown color %q", sp.name, node.Color)
		}
		*sp.dst = Sprite{Glyph: glyph[0], Color: color}
	}

	cam, ok := nodes["camera"]
	if !ok {
		return Scene{}, fmt.Errorf("scene: missing node %q", "camera")
	}
	if cam.Extent <= 0 {
		return Scene{}, fmt.Errorf("scene: camera extent must be positive, got %v", cam.Extent)
	}
	s.Camera = Camera{Extent: cam.Extent}

	return s, nil
}
