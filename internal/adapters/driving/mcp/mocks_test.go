package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	model  *domain.Model
	err    error
	output domain.OutputSettings
	calls  int
}

func (m *mockConversionService) Convert(ctx context.Context, in, out string) (*domain.ConversionReport, error) {
	return m.ConvertWith(ctx, in, out, domain.DefaultConversionSettings().Output)
}

func (m *mockConversionService) ConvertWith(
	_ context.Context,
	in, out string,
	output domain.OutputSettings,
) (*domain.ConversionReport, error) {
	m.calls++
	m.output = output
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ConversionReport{
		RunID:      "run-1",
		InputPath:  in,
		OutputPath: out,
		Emitted:    domain.EmitStats{CellularLocations: 1, Proteins: 1, Reactions: 1, Stoichiometries: 2},
		Bytes:      2048,
		Duration:   1500 * time.Microsecond,
	}, nil
}

func (m *mockConversionService) Inspect(context.Context, string) (*domain.Model, error) {
	return m.model, m.err
}
