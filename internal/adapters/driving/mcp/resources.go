package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for sbml2biopax resources.
	uriScheme = "sbml2biopax://"

	settingsURI = uriScheme + "settings"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Output and watch settings conversions start from",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// settingsInfo is the JSON shape of the settings resource.
type settingsInfo struct {
	Indent         int    `json:"indent"`
	LocationStyle  string `json:"location_style"`
	XMLDeclaration bool   `json:"xml_declaration"`
	DebounceMillis int    `json:"debounce_ms"`
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	data, err := json.MarshalIndent(settingsInfo{
		Indent:         settings.Output.Indent,
		LocationStyle:  settings.Output.LocationStyle.String(),
		XMLDeclaration: settings.Output.XMLDeclaration,
		DebounceMillis: settings.Watch.DebounceMillis,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
