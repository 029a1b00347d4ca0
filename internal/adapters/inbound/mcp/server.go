package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPepcheckMCPServer creates a new MCP server with all pepcheck tools
// registered. The projectPath is the root directory whose configuration
// and files the tools operate on.
func NewPepcheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"pepcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
