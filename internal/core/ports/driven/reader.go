package driven

import (
	"context"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// ModelReader extracts the intermediate model from a source document.
type ModelReader interface {
	// Format returns the source format name for logging (e.g. "celldesigner").
	Format() string

	// Read parses the whole document and returns an indexed model.
	// Missing required structure fails with a *domain.StructureError.
	Read(ctx context.Context, content []byte) (*domain.Model, error)
}
