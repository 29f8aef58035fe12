// Package highscore persists the best score as an 8-byte little-endian
// unsigned integer in a single file.
package highscore

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const size = 8

// Load reads the score stored at path
func Load(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	if len(data) < size {
		return 0, fmt.Errorf("read high score %s: %w", path, io.ErrUnexpectedEOF)
	}
	return binary.LittleEndian.Uint64(data[:size]), nil
}

// Save overwrites path with score. The write is not atomic.
func Save(path string, score uint64) error {
	var buf [size]byte
	binary.LittleEndian.PutUint64(buf[:], score)
	if err := os.WriteFile(path, buf[:], 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// Store is a file-backed score store
type Store struct {
	Path string
}

// NewStore creates a store for path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the stored score
func (s *Store) Load() (uint64, error) {
	return Load(s.Path)
}

// Save replaces the stored score
func (s *Store) Save(score uint64) error {
	return Save(s.Path, score)
}
