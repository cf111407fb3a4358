package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/celldesigner"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/testhelpers"
)

func TestServer_handleConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts with stored settings", func(t *testing.T) {
		conv := &mockConversionService{}
		server := newTestServer(t, conv)

		_, output, err := server.handleConvert(ctx, nil, ConvertInput{Input: "model.xml", Output: "model.owl"})

		require.NoError(t, err)
		assert.Equal(t, "run-1", output.RunID)
		assert.Equal(t, "model.owl", output.Output)
		assert.Equal(t, 2048, output.Bytes)
		assert.Equal(t, int64(1), output.DurationMillis)
		assert.Equal(t, 2, output.Emitted.Stoichiometries)
		assert.Equal(t, domain.DefaultConversionSettings().Output, conv.output)
	})

	t.Run("applies overrides", func(t *testing.T) {
		conv := &mockConversionService{}
		server := newTestServer(t, conv)
		indent, declaration := 0, false

		_, _, err := server.handleConvert(ctx, nil, ConvertInput{
			Input:          "model.xml",
			Output:         "model.owl",
			Indent:         &indent,
			LocationStyle:  "fragment",
			XMLDeclaration: &declaration,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.OutputSettings{
			Indent:        0,
			LocationStyle: domain.LocationStyleFragment,
		}, conv.output)
	})

	t.Run("rejects invalid overrides", func(t *testing.T) {
		conv := &mockConversionService{}
		server := newTestServer(t, conv)

		_, _, err := server.handleConvert(ctx, nil, ConvertInput{
			Input: "model.xml", Output: "model.owl", LocationStyle: "inline",
		})

		require.Error(t, err)
		assert.Zero(t, conv.calls)
	})

	t.Run("returns error on conversion failure", func(t *testing.T) {
		server := newTestServer(t, &mockConversionService{err: domain.ErrStructure})

		_, _, err := server.handleConvert(ctx, nil, ConvertInput{Input: "model.xml", Output: "model.owl"})

		assert.ErrorIs(t, err, domain.ErrStructure)
	})
}

func TestServer_handleInspect(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summary and model JSON", func(t *testing.T) {
		model, err := celldesigner.New().Read(ctx, []byte(testhelpers.KinaseModel().XML()))
		require.NoError(t, err)
		server := newTestServer(t, &mockConversionService{model: model})

		result, output, err := server.handleInspect(ctx, nil, InspectInput{Input: "model.xml"})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Stats.Proteins)
		assert.Equal(t, 2, output.Stats.Species)
		assert.Equal(t, []ReactionOutput{{
			ID:        "re1",
			Type:      "STATE_TRANSITION",
			Direction: "REVERSIBLE",
			Reactants: []string{"sa1"},
			Products:  []string{"sa2"},
		}}, output.Reactions)

		require.NotNil(t, result)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
		assert.Contains(t, decoded, "speciesAliases")
		assert.Contains(t, decoded, "reactions")
	})

	t.Run("returns error on inspect failure", func(t *testing.T) {
		server := newTestServer(t, &mockConversionService{err: errors.New("no such file")})

		_, _, err := server.handleInspect(ctx, nil, InspectInput{Input: "missing.xml"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no such file")
	})
}
