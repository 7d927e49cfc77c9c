package cli

import (
	mcpadapter "github.com/rolelens/rolelens/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the rolelens MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var rolePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start rolelens MCP server (stdio)",
		Long:  "Start the rolelens MCP server using stdio transport. This lets AI review assistants request structure and lint reports for a role.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rolePath == "" {
				rolePath = "."
			}
			s := mcpadapter.NewRoleLensMCPServer(rolePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&rolePath, "path", "", "Role path (defaults to current working directory)")

	return cmd
}
