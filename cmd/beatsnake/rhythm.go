package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

var rhythmCmd = &cobra.Command{
	Use:   "rhythm",
	Short: "Build and inspect rhythm chunk files",
	Long: `A rhythm text file is a bpm line followed by beat lines, where "x"
marks a beat that drops an apple and "." a rest. The build command compiles
it into the binary chunk the game loads with --rhythm.

Examples:
  beatsnake rhythm build beats.txt beats.chunk
  beatsnake rhythm inspect beats.chunk`,
}

var rhythmBuildCmd = &cobra.Command{
	Use:   "build <source.txt> <out.chunk>",
	Short: "Compile a rhythm text file into a chunk",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		t, err := rhythm.Convert(args[0], args[1])
		if err != nil {
			return err
		}
		logger.Info("chunk written",
			"path", args[1],
			"bpm", t.BPM(),
			"beats", t.Count(),
			"active", t.ActiveCount(),
		)
		return nil
	},
}

var rhythmInspectCmd = &cobra.Command{
	Use:   "inspect <file.chunk>",
	Short: "Print every track in a chunk",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		tracks, err := rhythm.ReadChunk(f)
		if err != nil {
			return err
		}
		for i, t := range tracks {
			fmt.Printf("track %d: %d bpm, %d beats (%d active), %.2fs per pass\n",
				i, t.BPM(), t.Count(), t.ActiveCount(), t.Duration())
			fmt.Printf("  %s\n", t.Pattern())
		}
		return nil
	},
}

func init() {
	rhythmCmd.AddCommand(rhythmBuildCmd)
	rhythmCmd.AddCommand(rhythmInspectCmd)
}
