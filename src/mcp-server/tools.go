// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const toolLocateLaunchTarget = "locate_launch_target"

// createTools returns every tool the server registers.
func createTools() []ToolDefinitionWithConfig {
	return []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool(toolLocateLaunchTarget,
				mcp.WithDescription("Find the script amca-finder would launch from a directory. Climbs 'depth' levels, searches the subtree for files named exactly 'name' and returns the candidates ranked best first, without running anything."),
				mcp.WithString("directory",
					mcp.Required(),
					mcp.Description("Absolute directory to start from (the launcher uses the working directory)"),
				),
				mcp.WithString("name",
					mcp.Description("Exact file name to look for (default: configured target, "+config.DefaultTarget+")"),
				),
				mcp.WithNumber("depth",
					mcp.Description("Directory levels to climb before searching, >= 0 (default: configured depth)"),
				),
			),
			Handler: handleLocateLaunchTarget,
			Role:    "locator",
		},
	}
}
