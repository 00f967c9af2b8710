// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// It covers the two process-level lookups the launcher needs:
//   - GetExecutableName: the executable name without extension for CLI usage strings
//   - ResolveInterpreter: the first interpreter from a preference list found on PATH
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " [-ms N] [ARGS...]",
//	}
//
//	interp, err := posix.ResolveInterpreter("python", "python3")
//	if err != nil {
//	    return err
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/amca-finder" → "amca-finder"
//   - Windows: "C:\bin\amca-finder.exe" → "amca-finder"
//   - Fallback: Empty args → "amca-finder"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
