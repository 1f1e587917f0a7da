package main

import (
	"fmt"

	"github.com/vovakirdan/beatsnake/internal/config"
	"github.com/vovakirdan/beatsnake/internal/platform/tui"
	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

const gameID = "beatsnake"

// assets is everything a session needs besides the audio device.
type assets struct {
	cfg    config.SnakeConfig
	preset config.DifficultyPreset
	track  *rhythm.Track
}

// loadAssets resolves the config, the difficulty preset and the rhythm track
// from the global flags.
func loadAssets() (assets, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return assets{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return assets{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return assets{}, fmt.Errorf("config: %w", err)
	}

	track, err := rhythm.Load(flagRhythm)
	if err != nil {
		return assets{}, err
	}

	logger.Debug("assets loaded",
		"difficulty", preset,
		"bpm", track.BPM(),
		"beats", track.Count(),
		"active", track.ActiveCount(),
	)
	return assets{cfg: cfg, preset: preset, track: track}, nil
}

func (a assets) sessionOptions(player string) tui.SessionOptions {
	return tui.SessionOptions{
		GameID:     gameID,
		Player:     player,
		Difficulty: string(a.preset),
		Track:      tui.TrackInfo{BPM: a.track.BPM(), Pattern: a.track.Pattern()},
	}
}
