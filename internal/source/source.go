// Package source provides sequential single-character reads over a text file.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNotFound reports a path that does not resolve to a readable file.
	ErrNotFound = errors.New("file not found")
	// ErrEndOfData is returned by Next once every character has been read.
	ErrEndOfData = errors.New("end of data")
	// ErrClosed is returned by operations on a closed source.
	ErrClosed = errors.New("source is closed")
)

// Source reads a UTF-8 text file one character at a time.
//
// A single character of lookahead is kept so Exhausted answers correctly
// before the first read and right after the last one. A Source is not safe
// for concurrent use.
type Source struct {
	path string
	size int64
	file *os.File
	br   *bufio.Reader

	next    rune
	hasNext bool
	err     error
}

// Check reports whether path names a readable regular file. The file is
// opened and closed again, so nothing stays held after Check returns.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if cerr := file.Close(); cerr != nil {
		// Best-effort close after the readability check.
		_ = cerr
	}
	return nil
}

// Open opens path and positions the source at its first character.
func Open(path string) (*Source, error) {
	if err := Check(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	info, err := file.Stat()
	if err != nil {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close on stat failure.
			_ = cerr
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	s := &Source{path: path, size: info.Size(), file: file}
	s.rewind()
	return s, nil
}

// Path returns the path the source was opened with.
func (s *Source) Path() string {
	return s.path
}

// Size returns the file size in bytes at open time.
func (s *Source) Size() int64 {
	return s.size
}

// Exhausted reports whether no more characters are available.
// A pending read error does not count as exhaustion; Next returns it.
func (s *Source) Exhausted() bool {
	return !s.hasNext && s.err == nil
}

// Next returns the next character and advances the cursor.
// It returns ErrEndOfData when the source is exhausted.
func (s *Source) Next() (rune, error) {
	if s.hasNext {
		r := s.next
		s.fill()
		return r, nil
	}
	if s.err != nil {
		return 0, s.err
	}
	return 0, ErrEndOfData
}

// Reset rewinds the source to its first character.
func (s *Source) Reset() error {
	if s.file == nil {
		return ErrClosed
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", s.path, err)
	}
	s.rewind()
	return nil
}

// Close releases the file handle. Calling Close more than once is a no-op.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.br = nil
	s.hasNext = false
	s.err = ErrClosed
	return err
}

// rewind drops buffered bytes and decoder state, then loads the first character.
func (s *Source) rewind() {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	s.br = bufio.NewReader(transform.NewReader(s.file, decoder))
	s.err = nil
	s.fill()
}

func (s *Source) fill() {
	r, _, err := s.br.ReadRune()
	switch {
	case err == nil:
		s.next = r
		s.hasNext = true
	case errors.Is(err, io.EOF):
		s.hasNext = false
	default:
		s.hasNext = false
		s.err = fmt.Errorf("failed to read %s: %w", s.path, err)
	}
}
