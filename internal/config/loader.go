package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads rhythm snake configuration.
// Search order: customPath -> ~/.beatsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := parseSnakeFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, err := parseSnakeFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := parseSnakeFile(filepath.Join("configs", "snake.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnakeFile overlays a YAML file onto the hardcoded defaults so that
// partial files only override what they mention.
func parseSnakeFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".beatsnake", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Movement.StartSpeed <= 0:
		return fmt.Errorf("movement.start_speed must be positive, got %v", c.Movement.StartSpeed)
	case c.Hunger.Max <= 0:
		return fmt.Errorf("hunger.max must be positive, got %v", c.Hunger.Max)
	case c.Hunger.GrowthRate < 0 || c.Hunger.GrowthRateStep < 0 || c.Movement.SpeedStep < 0:
		return fmt.Errorf("escalation rates must not be negative")
	case c.Apples.Lifetime <= 0:
		return fmt.Errorf("apples.lifetime must be positive, got %v", c.Apples.Lifetime)
	case c.Arena.HalfWidth <= 0:
		return fmt.Errorf("arena.half_width must be positive, got %v", c.Arena.HalfWidth)
	case c.Hunger.Restore < 0:
		return fmt.Errorf("hunger.restore must not be negative, got %v", c.Hunger.Restore)
	case c.Apples.PickupBound <= 0:
		return fmt.Errorf("apples.pickup_bound must be positive, got %v", c.Apples.PickupBound)
	case c.Body.SelfBound <= 0:
		return fmt.Errorf("body.self_bound must be positive, got %v", c.Body.SelfBound)
	case c.Body.Gap <= 2*c.Body.SelfBound:
		// A new segment closer than that overlaps the one before it.
		return fmt.Errorf("body.gap must exceed twice body.self_bound (%v), got %v", 2*c.Body.SelfBound, c.Body.Gap)
	case c.Apples.MinZ > c.Apples.MaxZ:
		return fmt.Errorf("apples.min_z %v is above apples.max_z %v", c.Apples.MinZ, c.Apples.MaxZ)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	case c.Audio.ClickPitch <= 0:
		return fmt.Errorf("audio.click_pitch must be positive, got %v", c.Audio.ClickPitch)
	}
	return nil
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Movement.StartSpeed *= 0.7
		cfg.Hunger.GrowthRate *= 0.6
		cfg.Hunger.Restore *= 1.5
	case DifficultyHard:
		cfg.Movement.StartSpeed *= 1.3
		cfg.Hunger.GrowthRate *= 1.5
		cfg.Apples.Lifetime *= 0.75
	case DifficultyFixed:
		cfg.Movement.SpeedStep = 0
		cfg.Hunger.GrowthRateStep = 0
	}
}
