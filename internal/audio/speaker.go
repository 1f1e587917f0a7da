package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/beatsnake/internal/rhythm"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Source produces a fresh streamer for each pass of the song loop. A pass
// that holds an open resource also implements io.Closer.
type Source func() (beep.Streamer, error)

// Check builds one pass and releases it, so a bad source is reported before
// the first beat instead of mid-run.
func (s Source) Check() error {
	st, err := s()
	if err != nil {
		return err
	}
	if c, ok := st.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SynthSource plays the synthesized click track for a rhythm.
func SynthSource(track *rhythm.Track, pitch float64) Source {
	return func() (beep.Streamer, error) {
		return BeatLoop(track, SampleRate, pitch)
	}
}

// WavSource decodes a WAV file for every pass, resampling to SampleRate.
func WavSource(path string) Source {
	return func() (beep.Streamer, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("audio: failed to open %s: %w", path, err)
		}
		streamer, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
		}
		var s beep.Streamer = streamer
		if format.SampleRate != SampleRate {
			s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
		}
		return &filePass{Streamer: s, file: streamer}, nil
	}
}

// filePass streams one decoded file and closes it when drained or when
// closed early, whichever comes first.
type filePass struct {
	beep.Streamer
	file io.Closer
	once sync.Once
	err  error
}

func (p *filePass) Stream(samples [][2]float64) (int, bool) {
	n, ok := p.Streamer.Stream(samples)
	if !ok {
		p.Close()
	}
	return n, ok
}

// Close releases the file. Further calls return the first result.
func (p *filePass) Close() error {
	p.once.Do(func() { p.err = p.file.Close() })
	return p.err
}

var initSpeaker = sync.OnceValue(func() error {
	return speaker.Init(SampleRate, SampleRate.N(time.Second/10))
})

// SpeakerPlayer plays passes of a Source on the default audio device.
type SpeakerPlayer struct {
	source  Source
	gain    float64
	current io.Closer
}

// NewSpeakerPlayer checks the source and opens the audio device. Failure here
// is not fatal for the game; callers usually fall back to Silent.
func NewSpeakerPlayer(source Source, gain float64) (*SpeakerPlayer, error) {
	if err := source.Check(); err != nil {
		return nil, err
	}
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return &SpeakerPlayer{source: source, gain: gain}, nil
}

// Play starts one pass. The playback reports stopped once the pass drains.
func (p *SpeakerPlayer) Play() (Playback, error) {
	s, err := p.source()
	if err != nil {
		return nil, err
	}

	p.current = nil
	if c, ok := s.(io.Closer); ok {
		p.current = c
	}

	pb := &flagPlayback{}
	speaker.Play(beep.Seq(volume(s, p.gain), beep.Callback(pb.stop)))
	return pb, nil
}

// Stop clears everything queued on the speaker and releases the pass that
// was cut short.
func (p *SpeakerPlayer) Stop() {
	speaker.Clear()
	p.release()
}

func (p *SpeakerPlayer) release() {
	if p.current != nil {
		p.current.Close()
		p.current = nil
	}
}
