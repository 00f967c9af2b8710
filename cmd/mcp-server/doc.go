// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server is a Model Context Protocol (MCP) server that lets AI assistants
// ask which script amca-finder would launch from a directory.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/amca-finder/cmd/mcp-server@latest
//
// # Usage
//
//	mcp-server [FLAGS]
//
// # Flags
//
//	--config        Path to configuration file (JSON or YAML)
//	--instructions  Print the instructions sent to MCP clients
//	--help          Show help information
//	--version       Show version information
//
// # MCP Tools
//
//   - locate_launch_target: Rank the files amca-finder would consider from a directory
//
// # MCP Resources
//
//   - amca://config-template: Commented configuration template
//   - amca://version: Version and tool list
//
// Protocol messages use stdin and stdout; logs are JSON lines on stderr.
package main
