// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FallbackName is used when os.Args[0] is unavailable.
const FallbackName = "amca-finder"

// ErrNoInterpreter is returned by [ResolveInterpreter] when none of the
// candidates can be found.
var ErrNoInterpreter = errors.New("no interpreter found on PATH")

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so
// usage strings look the same on every OS.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := filepath.Base(os.Args[0])

	// A foreign separator (Windows path on Unix or the reverse) survives
	// filepath.Base, so split on both by hand.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// ResolveInterpreter returns the first candidate that resolves with
// [exec.LookPath]. Candidates containing a path separator are checked as
// given. Empty candidates are ignored.
//
// When nothing resolves, the first non-empty candidate is returned together
// with an error wrapping [ErrNoInterpreter], so a caller that wants the
// original "just run it" behavior can ignore the error.
func ResolveInterpreter(candidates ...string) (string, error) {
	first := ""
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if first == "" {
			first = c
		}
		if p, err := lookPath(c); err == nil {
			return p, nil
		}
	}
	if first == "" {
		return "", ErrNoInterpreter
	}
	return first, fmt.Errorf("%w: tried %s", ErrNoInterpreter, strings.Join(nonEmpty(candidates), ", "))
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
