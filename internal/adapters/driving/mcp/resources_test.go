package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sbml2biopax/internal/core/services"
)

func TestServer_handleSettingsResource(t *testing.T) {
	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.Set(services.KeyLocationStyle, "fragment"))

	server, err := NewServer(&Ports{Conversion: &mockConversionService{}, Settings: settings})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: settingsURI}}
	result, err := server.handleSettingsResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	content := result.Contents[0]
	assert.Equal(t, settingsURI, content.URI)
	assert.Equal(t, "application/json", content.MIMEType)

	var info settingsInfo
	require.NoError(t, json.Unmarshal([]byte(content.Text), &info))
	assert.Equal(t, settingsInfo{
		Indent:         2,
		LocationStyle:  "fragment",
		XMLDeclaration: true,
		DebounceMillis: 250,
	}, info)
}
