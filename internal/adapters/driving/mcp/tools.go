package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Input          string `json:"input" jsonschema:"path of the CellDesigner SBML file to read"`
	Output         string `json:"output" jsonschema:"path of the BioPAX RDF/XML file to write"`
	Indent         *int   `json:"indent,omitempty" jsonschema:"spaces per nesting level (0 writes a single line)"`
	LocationStyle  string `json:"location_style,omitempty" jsonschema:"mixed or fragment"`
	XMLDeclaration *bool  `json:"xml_declaration,omitempty" jsonschema:"write the XML declaration"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	RunID          string           `json:"run_id"`
	Output         string           `json:"output"`
	Bytes          int              `json:"bytes"`
	DurationMillis int64            `json:"duration_ms"`
	Emitted        domain.EmitStats `json:"emitted"`
}

// InspectInput is the input schema for the inspect tool.
type InspectInput struct {
	Input string `json:"input" jsonschema:"path of the CellDesigner SBML file to read"`
}

// InspectOutput is the output schema for the inspect tool. The full model
// is returned as JSON text content alongside it.
type InspectOutput struct {
	Stats     domain.ModelStats `json:"stats"`
	Reactions []ReactionOutput  `json:"reactions"`
}

// ReactionOutput summarises one reaction by participant alias.
type ReactionOutput struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Direction string   `json:"direction"`
	Reactants []string `json:"reactants"`
	Products  []string `json:"products"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a CellDesigner SBML file to BioPAX Level 3 RDF/XML",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect",
		Description: "Extract the model tables from a CellDesigner SBML file without converting it",
	}, s.handleInspect)
}

// handleConvert runs one conversion with the stored settings and any
// per-call overrides.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	output, err := s.outputSettings(input)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	report, err := s.ports.Conversion.ConvertWith(ctx, input.Input, input.Output, output)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	return nil, ConvertOutput{
		RunID:          report.RunID,
		Output:         report.OutputPath,
		Bytes:          report.Bytes,
		DurationMillis: report.Duration.Milliseconds(),
		Emitted:        report.Emitted,
	}, nil
}

func (s *Server) outputSettings(input ConvertInput) (domain.OutputSettings, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.OutputSettings{}, fmt.Errorf("loading settings: %w", err)
	}

	if input.Indent != nil {
		settings.Output.Indent = *input.Indent
	}
	if input.LocationStyle != "" {
		settings.Output.LocationStyle = domain.LocationStyle(input.LocationStyle)
	}
	if input.XMLDeclaration != nil {
		settings.Output.XMLDeclaration = *input.XMLDeclaration
	}

	if err := s.ports.Settings.Validate(settings); err != nil {
		return domain.OutputSettings{}, err
	}
	return settings.Output, nil
}

// handleInspect returns a reaction summary and the full model as JSON.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectInput,
) (*mcp.CallToolResult, InspectOutput, error) {
	model, err := s.ports.Conversion.Inspect(ctx, input.Input)
	if err != nil {
		return nil, InspectOutput{}, err
	}

	data, err := json.Marshal(model)
	if err != nil {
		return nil, InspectOutput{}, fmt.Errorf("marshalling model: %w", err)
	}

	output := InspectOutput{
		Stats:     model.Stats(),
		Reactions: make([]ReactionOutput, 0, model.Reactions.Len()),
	}
	for pair := model.Reactions.Oldest(); pair != nil; pair = pair.Next() {
		output.Reactions = append(output.Reactions, reactionOutput(pair.Value))
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
	return result, output, nil
}

func reactionOutput(r domain.Reaction) ReactionOutput {
	out := ReactionOutput{
		ID:        r.ID,
		Type:      r.ReactionType,
		Direction: string(r.Direction()),
		Reactants: []string{},
		Products:  []string{},
	}
	for pair := r.Reactants.Oldest(); pair != nil; pair = pair.Next() {
		out.Reactants = append(out.Reactants, pair.Key)
	}
	for pair := r.Products.Oldest(); pair != nil; pair = pair.Next() {
		out.Products = append(out.Products, pair.Key)
	}
	return out
}
