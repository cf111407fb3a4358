package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing two tools:

  convert - convert a CellDesigner SBML file to BioPAX, with optional
            indent, location_style and xml_declaration overrides
  inspect - return the tables extracted from a CellDesigner file

and the sbml2biopax://settings resource.

The server speaks JSON-RPC over stdio by default. Use --port to serve
streamable HTTP instead.

Examples:
  sbml2biopax mcp serve
  sbml2biopax mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Conversion: conversionService,
		Settings:   settingsService,
	})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
