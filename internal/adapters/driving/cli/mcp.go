package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:         "mcp",
	Short:       "MCP server commands",
	Long:        `Commands for the Model Context Protocol (MCP) server integration.`,
	Annotations: map[string]string{annotationNoData: "true"},
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can look up
cities and distances, price deliveries and record them.

The server communicates over stdio using JSON-RPC. Data is loaded when
the server starts and saved after every recorded delivery.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "fleetbook": {
        "command": "/path/to/fleetbook",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Network:  networkService,
		Delivery: deliveryService,
		Data:     dataService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
