// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the Cobra-based command surfaces of amca-finder.
//
// [RunLauncher] backs the amca-finder binary: every argument is forwarded to
// the launched script untouched, and only "-ms N" is read to pick the search
// depth. [ExecuteLocate] backs amca-locate, which runs the same search and
// ranking but prints the ranked candidates as plain lines, a markdown table or
// JSON instead of launching anything.
//
// Errors map to process exit codes through [ExitCode].
package cli
