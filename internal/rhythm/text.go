package rhythm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptySource is returned when a text source has no bpm line.
var ErrEmptySource = errors.New("rhythm: empty text source")

// ParseText reads the text source format: the first line is the integer bpm,
// every following line contributes one beat per character, active when the
// character is 'x'.
func ParseText(r io.Reader) (*Track, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("rhythm: reading source: %w", err)
		}
		return nil, ErrEmptySource
	}

	bpmLine := strings.TrimSpace(sc.Text())
	bpm, err := strconv.ParseUint(bpmLine, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadBPM, bpmLine)
	}

	var beats []bool
	for sc.Scan() {
		// One beat per byte, so a multibyte character counts several rests.
		line := strings.TrimRight(sc.Text(), "\r")
		for i := 0; i < len(line); i++ {
			beats = append(beats, line[i] == 'x')
			if len(beats) > MaxBeats {
				return nil, fmt.Errorf("%w: line %q", ErrTooManyBeats, sc.Text())
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rhythm: reading source: %w", err)
	}

	return NewTrack(uint32(bpm), beats)
}
