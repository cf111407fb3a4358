package driven

import "io"

// FileSink reads source files and replaces destination files atomically.
type FileSink interface {
	// ReadAll reads the entire file at path.
	ReadAll(path string) ([]byte, error)

	// WriteAtomic calls fn with a writer for path. The destination is
	// replaced only if fn succeeds; otherwise the previous file, or its
	// absence, is left as it was.
	WriteAtomic(path string, fn func(w io.Writer) error) error
}
