package rhythm

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/rhythm.txt
var defaultRhythmText []byte

// Default returns the built-in track.
func Default() *Track {
	t, err := ParseText(bytes.NewReader(defaultRhythmText))
	if err != nil {
		panic(fmt.Sprintf("rhythm: embedded default is invalid: %v", err))
	}
	return t
}

// LoadFile reads the first track of a chunk file.
func LoadFile(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rhythm: failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadFirst(f)
	if err != nil {
		return nil, fmt.Errorf("rhythm: failed to load %s: %w", path, err)
	}
	return t, nil
}

// Load finds the rhythm track to play.
// Search order: customPath -> ~/.beatsnake/rhythm.chunk -> ./assets/rhythm.chunk -> embedded default
func Load(customPath string) (*Track, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		if t, err := LoadFile(filepath.Join(home, ".beatsnake", "rhythm.chunk")); err == nil {
			return t, nil
		}
	}

	if t, err := LoadFile(filepath.Join("assets", "rhythm.chunk")); err == nil {
		return t, nil
	}

	return Default(), nil
}

// Convert parses a text source file and writes it as a chunk file.
func Convert(srcPath, dstPath string) (*Track, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("rhythm: failed to open %s: %w", srcPath, err)
	}
	defer src.Close()

	t, err := ParseText(src)
	if err != nil {
		return nil, fmt.Errorf("rhythm: failed to parse %s: %w", srcPath, err)
	}

	if dir := filepath.Dir(dstPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("rhythm: cannot create directory %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := WriteChunk(&buf, t); err != nil {
		return nil, err
	}
	if err := os.WriteFile(dstPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("rhythm: failed to write %s: %w", dstPath, err)
	}
	return t, nil
}
