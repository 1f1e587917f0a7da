// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// SnakeConfig contains all configuration for the rhythm snake game.
type SnakeConfig struct {
	Movement SnakeMovement `yaml:"movement"`
	Hunger   SnakeHunger   `yaml:"hunger"`
	Apples   SnakeApples   `yaml:"apples"`
	Body     SnakeBody     `yaml:"body"`
	Arena    SnakeArena    `yaml:"arena"`
	Audio    SnakeAudio    `yaml:"audio"`
	Scene    SceneConfig   `yaml:"scene"`
}

// SnakeMovement defines how fast the snake travels and how that escalates.
type SnakeMovement struct {
	StartSpeed float64 `yaml:"start_speed"` // World units per second
	SpeedStep  float64 `yaml:"speed_step"`  // Added to speed per apple eaten
}

// SnakeHunger defines the hunger meter that ends the game on overflow.
type SnakeHunger struct {
	Max            float64 `yaml:"max"`
	GrowthRate     float64 `yaml:"growth_rate"`      // Hunger per second at start
	GrowthRateStep float64 `yaml:"growth_rate_step"` // Added to growth rate per apple eaten
	Restore        float64 `yaml:"restore"`          // Hunger removed per apple eaten
}

// SnakeApples defines apple pickups.
type SnakeApples struct {
	Lifetime    float64 `yaml:"lifetime"`     // Seconds before an uneaten apple despawns
	PickupBound float64 `yaml:"pickup_bound"` // Half-extent for head-vs-apple overlap
	MinZ        float64 `yaml:"min_z"`        // Depth bob range
	MaxZ        float64 `yaml:"max_z"`
}

// SnakeBody defines body segment spacing and self-collision.
type SnakeBody struct {
	Gap       float64 `yaml:"gap"`        // Distance behind the tail where a new segment appears
	SelfBound float64 `yaml:"self_bound"` // Half-extent for head-vs-body overlap
}

// SnakeArena defines the square play field centered on the origin.
type SnakeArena struct {
	HalfWidth float64 `yaml:"half_width"`
}

// SnakeAudio defines the song loop.
type SnakeAudio struct {
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
	ClickPitch float64 `yaml:"click_pitch"` // Hz of the synthesized beat click
}

// SceneConfig holds the named scene nodes the game resolves at load time.
type SceneConfig struct {
	Nodes map[string]SceneNode `yaml:"nodes"`
}

// SceneNode describes how one scene entity is drawn.
// For the camera node, Extent is the world half-width kept in view.
type SceneNode struct {
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Extent float64 `yaml:"extent,omitempty"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
