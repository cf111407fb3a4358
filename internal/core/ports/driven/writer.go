package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// PathwayWriter emits a model as a target pathway document.
type PathwayWriter interface {
	// Format returns the target format name for logging (e.g. "biopax-level3").
	Format() string

	// Write builds the complete document before writing any bytes to w,
	// so a failure leaves w untouched.
	Write(ctx context.Context, w io.Writer, model *domain.Model) (*domain.EmitStats, error)
}
