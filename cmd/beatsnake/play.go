package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beatsnake/internal/audio"
	"github.com/vovakirdan/beatsnake/internal/core"
	"github.com/vovakirdan/beatsnake/internal/games/snake"
	"github.com/vovakirdan/beatsnake/internal/platform/tui"
	"github.com/vovakirdan/beatsnake/internal/storage"
)

var (
	flagMusic string
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a local session with the menu, the game and the scoreboard.

Controls:
  WASD/Arrows  - Steer (hold to turn at the next pivot)
  P/Space      - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu (when paused or over)
  Q/Ctrl+C     - Quit

Audio:
  By default a click track is synthesized from the rhythm. Use --music to
  loop a WAV file instead, or --mute to play silently. If the audio device
  cannot be opened the game runs silently and keeps the beat on its own.

Examples:
  beatsnake play
  beatsnake play --difficulty easy
  beatsnake play --rhythm ./fast.chunk --music ./fast.wav
  beatsnake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMusic, "music", "", "WAV file to loop instead of the synthesized click track")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Play without audio")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := loadAssets()
	if err != nil {
		return err
	}

	player := openPlayer(a)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	factory := func() (tui.Game, error) {
		return snake.New(a.cfg, a.track, player)
	}
	return tui.Run(factory, store, cfg, a.sessionOptions(localPlayer()))
}

// openPlayer picks the audio backend. Any failure degrades to silence.
func openPlayer(a assets) audio.Player {
	if flagMute {
		return audio.Silent{}
	}

	source := audio.SynthSource(a.track, a.cfg.Audio.ClickPitch)
	if flagMusic != "" {
		source = audio.WavSource(flagMusic)
	}

	p, err := audio.NewSpeakerPlayer(source, a.cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Silent{}
	}
	return p
}

func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
