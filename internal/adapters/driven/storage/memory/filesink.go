package memory

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
)

// Ensure FileSink implements the interface.
var _ driven.FileSink = (*FileSink)(nil)

// FileSink is an in-memory implementation of driven.FileSink for testing.
type FileSink struct {
	mu     sync.RWMutex
	files  map[string][]byte
	writes int
}

// NewFileSink creates an empty in-memory file sink.
func NewFileSink() *FileSink {
	return &FileSink{
		files: make(map[string][]byte),
	}
}

// Put stores content at path.
func (s *FileSink) Put(path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), content...)
}

// ReadAll returns a copy of the content at path.
func (s *FileSink) ReadAll(path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return append([]byte(nil), content...), nil
}

// WriteAtomic buffers fn's output and stores it only if fn succeeds.
func (s *FileSink) WriteAtomic(path string, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = buf.Bytes()
	s.writes++
	return nil
}

// Exists reports whether path holds content.
func (s *FileSink) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[path]
	return ok
}

// Writes returns the number of successful WriteAtomic calls.
func (s *FileSink) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
