package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewRoleLensMCPServer creates a new MCP server with the rolelens tools and
// resources registered. The rolePath is the default role directory to
// analyze when a tool call supplies none.
func NewRoleLensMCPServer(rolePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"rolelens",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, rolePath)
	registerResources(s, rolePath)

	return s
}
