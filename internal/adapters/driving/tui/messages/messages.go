// Package messages defines Bubbletea message types for the watch dashboard.
package messages

import (
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// RunFinished carries the outcome of one conversion run.
// Report is nil when Err is set.
type RunFinished struct {
	Report *domain.ConversionReport
	Err    error
}

// Failed reports whether the run failed.
func (m RunFinished) Failed() bool {
	return m.Err != nil
}

// WatchStopped is sent when the watch loop returns.
type WatchStopped struct {
	Err error
}
