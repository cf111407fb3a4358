package driving

import (
	"context"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// ConversionService converts CellDesigner models to BioPAX documents.
type ConversionService interface {
	// Convert reads inputPath and replaces outputPath with the converted
	// document using the current settings. On any error the output file
	// is left untouched.
	Convert(ctx context.Context, inputPath, outputPath string) (*domain.ConversionReport, error)

	// ConvertWith is Convert with explicit output settings.
	ConvertWith(ctx context.Context, inputPath, outputPath string, output domain.OutputSettings) (*domain.ConversionReport, error)

	// Inspect extracts the intermediate model without emitting anything.
	Inspect(ctx context.Context, inputPath string) (*domain.Model, error)
}

// WatchService re-runs conversions when the input file changes.
type WatchService interface {
	// Watch converts once, then again after every change to inputPath,
	// until ctx is cancelled. onResult receives the outcome of each run.
	Watch(ctx context.Context, inputPath, outputPath string, onResult func(*domain.ConversionReport, error)) error
}
