package mcp

import (
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Conversion runs conversions and model inspection.
	Conversion driving.ConversionService

	// Settings supplies the output settings tool calls start from.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
