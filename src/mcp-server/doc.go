// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the amca-finder lookup over the Model Context
// Protocol ([MCP]) on stdio.
//
// The server offers one tool, locate_launch_target, which runs the same
// search and ranking as the launcher and returns the ranked candidates as
// JSON without executing anything. Resources serve the configuration template
// and version information. Server instructions are rendered from an embedded
// markdown template listing the registered tools.
//
// Servers are assembled with [ServerBuilder]; [CLIFramework] wraps the builder
// in a Cobra command with --config and --instructions flags.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
