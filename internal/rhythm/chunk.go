package rhythm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ChunkMagic tags a rhythm chunk.
const ChunkMagic = "rhy0"

// recordSize is the byte length of one track record:
// bpm uint32, beats [MaxBeats]byte, beat_count uint32.
const recordSize = 4 + MaxBeats + 4

// ReadChunk decodes every track record in a rhythm chunk.
// All multi-byte fields are little-endian.
func ReadChunk(r io.Reader) ([]*Track, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("rhythm: reading chunk header: %w", err)
	}
	if string(header[:4]) != ChunkMagic {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, header[:4])
	}

	size := binary.LittleEndian.Uint32(header[4:])
	if size%recordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}
	count := int(size / recordSize)
	if count == 0 {
		return nil, ErrNoRecords
	}

	tracks := make([]*Track, 0, count)
	rec := make([]byte, recordSize)
	for i := range count {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, fmt.Errorf("rhythm: reading record %d: %w", i, err)
		}
		t, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("rhythm: record %d: %w", i, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ReadFirst decodes a chunk and returns its first track.
func ReadFirst(r io.Reader) (*Track, error) {
	tracks, err := ReadChunk(r)
	if err != nil {
		return nil, err
	}
	return tracks[0], nil
}

func decodeRecord(rec []byte) (*Track, error) {
	bpm := binary.LittleEndian.Uint32(rec[0:4])
	count := binary.LittleEndian.Uint32(rec[4+MaxBeats:])
	if count > MaxBeats {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyBeats, count)
	}

	beats := make([]bool, count)
	for i := range beats {
		beats[i] = rec[4+i] != 0
	}
	return NewTrack(bpm, beats)
}

// WriteChunk encodes tracks as a single rhythm chunk.
func WriteChunk(w io.Writer, tracks ...*Track) error {
	if len(tracks) == 0 {
		return ErrNoRecords
	}

	buf := make([]byte, 8, 8+len(tracks)*recordSize)
	copy(buf, ChunkMagic)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(tracks)*recordSize))

	for _, t := range tracks {
		rec := make([]byte, recordSize)
		binary.LittleEndian.PutUint32(rec[0:4], t.bpm)
		for i, b := range t.beats {
			if b {
				rec[4+i] = 1
			}
		}
		binary.LittleEndian.PutUint32(rec[4+MaxBeats:], uint32(len(t.beats)))
		buf = append(buf, rec...)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("rhythm: writing chunk: %w", err)
	}
	return nil
}
