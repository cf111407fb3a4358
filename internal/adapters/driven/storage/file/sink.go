package file

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.FileSink = (*Sink)(nil)

// DefaultPerm is the mode of written output files.
const DefaultPerm os.FileMode = 0o644

// Sink reads and atomically replaces files on the local filesystem.
type Sink struct {
	perm os.FileMode
}

// NewSink creates a sink writing files with DefaultPerm.
func NewSink() *Sink {
	return &Sink{perm: DefaultPerm}
}

// ReadAll reads the entire file at path.
func (s *Sink) ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// WriteAtomic writes fn's output to a pending file next to path and
// renames it into place only when fn and the flush both succeed.
func (s *Sink) WriteAtomic(path string, fn func(w io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(s.perm))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	// Cleanup is a no-op once the file has been renamed.
	defer func() { _ = pf.Cleanup() }()

	if err := fn(pf); err != nil {
		return err
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
