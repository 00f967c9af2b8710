// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	uriConfigTemplate = "amca://config-template"
	uriVersion        = "amca://version"
)

// createResources returns every static resource the server registers.
func createResources(version string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration template",
				mcp.WithResourceDescription("Commented YAML configuration for amca-finder, amca-locate and this server"),
				mcp.WithMIMEType("application/yaml"),
			),
			Handler: handleConfigTemplateResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version information",
				mcp.WithResourceDescription("Server name, version and registered tools"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(version),
		},
	}
}
