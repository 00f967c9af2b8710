// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// handleConfigTemplateResource serves the embedded configuration template.
func handleConfigTemplateResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/yaml",
			Text:     string(config.Template),
		},
	}, nil
}

// versionResourceHandler serves name, version and tool names as JSON.
func versionResourceHandler(version string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tools := createTools()
		names := make([]string, 0, len(tools))
		for _, t := range tools {
			names = append(names, t.Tool.Name)
		}

		data, err := json.MarshalIndent(map[string]any{
			"name":    serverName,
			"version": version,
			"tools":   names,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uriVersion,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
