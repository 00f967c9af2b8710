// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName is advertised to MCP clients during initialization.
const serverName = "amca-finder"

// ErrNoConfig is returned by [ServerBuilder.Build] when no configuration was set.
var ErrNoConfig = errors.New("server configuration is required")

// ToolHandlerWithConfig is a tool handler that also receives the server
// configuration and logger.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error)

// ToolDefinitionWithConfig pairs a tool with its handler.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	// Role names the tool in the instructions template.
	Role string
}

// ServerDependencies holds everything a server and its handlers need.
type ServerDependencies struct {
	Config       *config.Config
	Logger       logger.Logger
	Version      string
	Tools        []ToolDefinitionWithConfig
	Resources    []server.ServerResource
	Instructions string
}

// ServerBuilder assembles an MCP server step by step.
//
// Example:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion(version).
//		WithTools(createTools()...).
//		WithResources(createResources(version)...).
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder returns an empty builder.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration handed to tool handlers.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithLogger sets the logger handed to tool handlers. Without one, output is discarded.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithVersion sets the advertised server version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tools.
func (b *ServerBuilder) WithTools(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the server and registers every tool and resource.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Config == nil {
		return nil, ErrNoConfig
	}
	if b.deps.Logger == nil {
		b.deps.Logger = logger.NewMCPLogger(nil, true)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	deps := b.deps
	for _, tool := range deps.Tools {
		s.AddTool(tool.Tool, bindTool(tool.Handler, &deps))
	}
	for _, resource := range deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}

// bindTool adapts a ToolHandlerWithConfig to the plain mcp-go handler signature.
func bindTool(h ToolHandlerWithConfig, deps *ServerDependencies) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, request, deps)
	}
}
