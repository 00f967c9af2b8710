// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pathmath provides the small path computations the candidate
// ranking relies on: ascending a number of directory levels, measuring how
// deep a path sits below its root, and the literal common prefix of two paths.
//
// All functions are pure and operate on cleaned path strings; they never
// touch the filesystem.
package pathmath

import (
	"path/filepath"
	"strings"
)

// Ascend returns path with its last n segments removed.
//
// Ascending past the root clamps at the root, so Ascend("/a", 5) is "/".
// A non-positive n returns the cleaned path unchanged.
func Ascend(path string, n int) string {
	p := filepath.Clean(path)
	for range n {
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	return p
}

// Depth returns the number of name segments below the root marker.
//
// Depth("/a/b/c") is 3 and Depth("/") is 0. On Windows the volume name
// counts as part of the root marker.
func Depth(path string) int {
	p := filepath.Clean(path)
	rest := p[len(filepath.VolumeName(p)):]
	rest = strings.TrimLeft(rest, string(filepath.Separator))
	if rest == "" || rest == "." {
		return 0
	}
	return strings.Count(rest, string(filepath.Separator)) + 1
}

// CommonPrefixLength reports how many leading bytes a and b share.
// Comparison stops at the first mismatch; it is a prefix match, not a
// longest common substring.
func CommonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
