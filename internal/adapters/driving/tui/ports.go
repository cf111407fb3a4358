// Package tui provides an interactive watch dashboard for sbml2biopax.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the dashboard.
type Ports struct {
	// Watch re-runs conversions when the input changes.
	Watch driving.WatchService

	// Conversion runs on-demand conversions.
	Conversion driving.ConversionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Watch == nil {
		return ErrMissingWatchService
	}
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	return nil
}
