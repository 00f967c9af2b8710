// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/finder"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleLocateLaunchTarget runs one search and returns the ranked report as JSON.
// A search that matches nothing is not an error; the report has an empty "best".
func handleLocateLaunchTarget(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	dir, err := request.RequireString("directory")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !filepath.IsAbs(dir) {
		return mcp.NewToolResultError(fmt.Sprintf("directory must be absolute, got %q", dir)), nil
	}

	cfg := deps.Config
	name := request.GetString("name", cfg.Target)
	if name == "" || name != filepath.Base(name) {
		return mcp.NewToolResultError(fmt.Sprintf("name must be a plain file name, got %q", name)), nil
	}
	depth := request.GetInt("depth", cfg.Depth)
	if depth < 0 {
		return mcp.NewToolResultError("depth must be an integer >= 0"), nil
	}

	report, err := finder.Locate(ctx,
		finder.Query{Origin: filepath.Clean(dir), Name: name, Depth: depth},
		finder.Options{Workers: cfg.Search.Workers, SkipUnreadable: cfg.Search.SkipUnreadable},
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		deps.Logger.Errorf("locate %s in %s failed: %v", name, dir, err)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	deps.Logger.Printf("located %d candidates for %s under %s", len(report.Candidates), name, report.Root)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
