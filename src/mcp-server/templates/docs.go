// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The markdown files in this directory are compiled into the binary and read
// through [MagicEmbed]:
//
//	content, err := templates.MagicEmbed.ReadFile("instructions.md")
//	if err != nil {
//		return fmt.Errorf("failed to read instructions: %w", err)
//	}
package templates
