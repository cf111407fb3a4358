package biopax

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
	"github.com/custodia-labs/sbml2biopax/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.PathwayWriter = (*Writer)(nil)

// Options configures a Writer.
type Options struct {
	Indent         int
	LocationStyle  domain.LocationStyle
	XMLDeclaration bool
}

// OptionsFromSettings maps output settings onto writer options.
func OptionsFromSettings(s domain.OutputSettings) Options {
	return Options{
		Indent:         s.Indent,
		LocationStyle:  s.LocationStyle,
		XMLDeclaration: s.XMLDeclaration,
	}
}

// DefaultOptions returns the options of the default settings.
func DefaultOptions() Options {
	return OptionsFromSettings(domain.DefaultConversionSettings().Output)
}

// Writer emits BioPAX Level 3 RDF/XML.
type Writer struct {
	opts     Options
	pipeline *Pipeline
}

// NewWriter creates a writer running the default pipeline.
func NewWriter(opts Options) *Writer {
	return &Writer{
		opts:     opts,
		pipeline: DefaultPipeline(),
	}
}

// Format returns the target format name.
func (w *Writer) Format() string {
	return "biopax-level3"
}

// Write builds and serializes the whole document in memory, then copies
// it to out in a single write.
func (w *Writer) Write(ctx context.Context, out io.Writer, model *domain.Model) (*domain.EmitStats, error) {
	emission, err := w.pipeline.Process(ctx, model, w.opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, emission.Document, EncodeOptions{
		Indent:         w.opts.Indent,
		XMLDeclaration: w.opts.XMLDeclaration,
	}); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	logger.Debug("emitted %d elements (%d bytes)", len(emission.Document.Entities()), buf.Len())

	if _, err := out.Write(buf.Bytes()); err != nil {
		return nil, err
	}
	return &emission.Stats, nil
}
