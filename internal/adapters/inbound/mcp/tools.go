package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rolelens/rolelens/internal/adapters/outbound/config"
	"github.com/rolelens/rolelens/internal/adapters/outbound/lintrunner"
	"github.com/rolelens/rolelens/internal/adapters/outbound/metadata"
	"github.com/rolelens/rolelens/internal/adapters/outbound/scanner"
	"github.com/rolelens/rolelens/internal/application"
)

// registerTools registers the rolelens MCP tools on the given server.
func registerTools(s *server.MCPServer, rolePath string) {
	// 1. rolelens_structure
	s.AddTool(
		mcplib.NewTool("rolelens_structure",
			mcplib.WithDescription("Analyze an Ansible role's directory layout and return a structure compliance report as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Role directory to analyze (defaults to the server's role path)"),
			),
		),
		handleStructure(rolePath),
	)

	// 2. rolelens_lint
	s.AddTool(
		mcplib.NewTool("rolelens_lint",
			mcplib.WithDescription("Run ansible-lint against an Ansible role and return normalized findings as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Role directory to lint (defaults to the server's role path)"),
			),
			mcplib.WithString("binary",
				mcplib.Description("Linter binary to invoke instead of the configured one"),
			),
		),
		handleLint(rolePath),
	)
}

func handleStructure(defaultPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			path = defaultPath
		}

		svc := application.NewStructureService(scanner.New(), metadata.New(), config.New())
		report, err := svc.AnalyzeRole(path)
		if err != nil {
			return errorResult(fmt.Sprintf("structure analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLint(defaultPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			path = defaultPath
		}
		binary, _ := request.GetArguments()["binary"].(string)

		svc := application.NewLintService(lintrunner.New(), config.New())
		report, err := svc.LintRole(ctx, path, application.LintOptions{Binary: binary})
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		// Invocation failures are part of the report body, not a tool
		// error; the caller decides what to do with them.
		return jsonResult(report)
	}
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
