package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rolelens/rolelens/internal/domain"
)

// registerResources registers the rolelens MCP resources on the given server.
func registerResources(s *server.MCPServer, rolePath string) {
	// rolelens://catalog - the expected role directory layout
	s.AddResource(
		mcplib.NewResource(
			"rolelens://catalog",
			"Role Directory Catalog",
			mcplib.WithResourceDescription("The conventional Ansible role subdirectories rolelens checks for"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(),
	)
}

func handleCatalogResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.ExpectedDirs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
