package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/pepcheck/pepcheck/internal/adapters/outbound/config"
	"github.com/pepcheck/pepcheck/internal/adapters/outbound/source"
	"github.com/pepcheck/pepcheck/internal/application"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
)

// registerTools registers all pepcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. pepcheck_check_files
	s.AddTool(
		mcplib.NewTool("pepcheck_check_files",
			mcplib.WithDescription("Check specific Python files for style violations, returned as JSON"),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file paths relative to the project root"),
			),
		),
		handleCheckFiles(projectPath),
	)

	// 2. pepcheck_check_project
	s.AddTool(
		mcplib.NewTool("pepcheck_check_project",
			mcplib.WithDescription("Check every Python file in the project and return the full violation report as JSON"),
		),
		handleCheckProject(projectPath),
	)

	// 3. pepcheck_list_rules
	s.AddTool(
		mcplib.NewTool("pepcheck_list_rules",
			mcplib.WithDescription("List the registered style rules with their codes and descriptions"),
		),
		handleListRules(),
	)

	// 4. pepcheck_get_config
	s.AddTool(
		mcplib.NewTool("pepcheck_get_config",
			mcplib.WithDescription("Return the effective checker configuration for the project"),
		),
		handleGetConfig(projectPath),
	)
}

func handleCheckFiles(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filesStr, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		var files []string
		for _, f := range splitAndTrim(filesStr) {
			files = append(files, filepath.Join(projectPath, f))
		}

		svc := application.NewCheckService(source.New())
		batch, err := svc.CheckFiles(ctx, files, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(batch)
	}
}

func handleCheckProject(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewCheckService(source.New())
		batch, err := svc.CheckPaths(ctx, []string{projectPath}, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(batch)
	}
}

func handleListRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		type ruleInfo struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		}
		var infos []ruleInfo
		for _, rule := range rules.All() {
			infos = append(infos, ruleInfo{Code: rule.Code(), Description: rule.Description()})
		}
		return jsonResult(infos)
	}
}

func handleGetConfig(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
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
