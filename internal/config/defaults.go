package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default rhythm snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Movement: SnakeMovement{
			StartSpeed: 10.0,
			SpeedStep:  0.05,
		},
		Hunger: SnakeHunger{
			Max:            10.0,
			GrowthRate:     1.0,
			GrowthRateStep: 0.005,
			Restore:        2.5,
		},
		Apples: SnakeApples{
			Lifetime:    2.0,
			PickupBound: 0.8,
			MinZ:        0.5,
			MaxZ:        1.5,
		},
		Body: SnakeBody{
			Gap:       2.0,
			SelfBound: 0.4,
		},
		Arena: SnakeArena{
			HalfWidth: 19.0,
		},
		Audio: SnakeAudio{
			Volume:     0.8,
			ClickPitch: 660.0,
		},
		Scene: SceneConfig{
			Nodes: map[string]SceneNode{
				"head":   {Glyph: "@", Color: "bright_green"},
				"body":   {Glyph: "o", Color: "green"},
				"apple":  {Glyph: "●", Color: "bright_red"},
				"stem":   {Glyph: "|", Color: "orange"},
				"leaf":   {Glyph: "'", Color: "bright_green"},
				"camera": {Extent: 20.0},
			},
		},
	}
}
