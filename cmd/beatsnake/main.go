// beatsnake is a rhythm snake for the terminal: apples drop on the beat and
// the snake starves if it misses them.
//
// Usage:
//
//	beatsnake play                     - Play locally
//	beatsnake serve                    - Start SSH server for remote play
//	beatsnake scores                   - Show the best runs
//	beatsnake rhythm build <in> <out>  - Compile a rhythm text file to a chunk
//	beatsnake rhythm inspect <chunk>   - Print the tracks in a chunk file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.beatsnake/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--rhythm <path>       - Rhythm chunk file to play
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRhythm     string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "beatsnake"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatsnake",
	Short: "Beat Snake - eat on the beat, or starve",
	Long: `Beat Snake is a terminal snake that moves freely and turns at pivots.
Apples appear on the active beats of a rhythm track and bob toward you
before they vanish. Every apple feeds the snake, grows it and makes it
faster; hunger builds up faster too.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  scores   - View the best and most recent runs
  rhythm   - Build and inspect rhythm chunk files

Examples:
  beatsnake play
  beatsnake play --difficulty hard --music song.wav
  beatsnake serve --ssh :2222
  beatsnake rhythm build beats.txt ~/.beatsnake/rhythm.chunk`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beatsnake/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagRhythm, "rhythm", "", "Path to a rhythm chunk file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rhythmCmd)
}
