// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/mcp-server/templates"
)

// toolInfo describes one tool in the instructions template.
type toolInfo struct {
	Name        string
	Description string
}

// instructionData is the instructions template input.
type instructionData struct {
	Tools         []toolInfo
	ToolRoles     map[string]string
	DefaultTarget string
	DefaultDepth  int
	EnvConfigFile string
}

// loadInstructions renders the embedded instructions template for tools.
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := embed.ReadFile("instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		ToolRoles:     make(map[string]string, len(tools)),
		DefaultTarget: config.DefaultTarget,
		DefaultDepth:  config.DefaultDepth,
		EnvConfigFile: config.EnvConfigFile,
	}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}
