// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathmath_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/pathmath"
	"github.com/stretchr/testify/assert"
)

// root returns an absolute root for the current OS.
func root() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func abs(parts ...string) string {
	return filepath.Join(append([]string{root()}, parts...)...)
}

func TestAscend(t *testing.T) {
	tests := []struct {
		name string
		path string
		n    int
		want string
	}{
		{name: "Zero levels", path: abs("a", "b", "c"), n: 0, want: abs("a", "b", "c")},
		{name: "Negative levels", path: abs("a", "b", "c"), n: -2, want: abs("a", "b", "c")},
		{name: "One level", path: abs("a", "b", "c"), n: 1, want: abs("a", "b")},
		{name: "To root", path: abs("a", "b", "c"), n: 3, want: root()},
		{name: "Past root clamps", path: abs("a", "b", "c"), n: 42, want: root()},
		{name: "Root stays root", path: root(), n: 1, want: root()},
		{name: "Trailing separator cleaned", path: abs("a", "b") + string(filepath.Separator), n: 1, want: abs("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathmath.Ascend(tt.path, tt.n))
		})
	}
}

func TestAscendProperties(t *testing.T) {
	paths := []string{
		root(),
		abs("a"),
		abs("a", "b", "c"),
		abs("home", "user", "projects", "game", "src"),
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Equal(t, filepath.Clean(p), pathmath.Ascend(p, 0))
			assert.Equal(t, root(), pathmath.Ascend(p, pathmath.Depth(p)))
			for n := range pathmath.Depth(p) + 2 {
				assert.LessOrEqual(t, pathmath.Depth(pathmath.Ascend(p, n)), pathmath.Depth(p))
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "Root", path: root(), want: 0},
		{name: "One segment", path: abs("a"), want: 1},
		{name: "Three segments", path: abs("a", "b", "c"), want: 3},
		{name: "File below directory", path: abs("a", "b", "c", "amca.py"), want: 4},
		{name: "Relative", path: filepath.Join("a", "b"), want: 2},
		{name: "Dot", path: ".", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathmath.Depth(tt.path))
		})
	}
}

func TestCommonPrefixLength(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "Identical", a: "/a/b/c", b: "/a/b/c", want: 6},
		{name: "Prefix", a: "/a/b/c", b: "/a/b/c/amca.py", want: 6},
		{name: "Diverging", a: "/a/b/c", b: "/a/x/c", want: 3},
		{name: "First byte differs", a: "x/a", b: "/a", want: 0},
		{name: "Empty", a: "", b: "/a", want: 0},
		{name: "Prefix only, not substring", a: "/q/a/b", b: "/a/b", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathmath.CommonPrefixLength(tt.a, tt.b))
			assert.Equal(t, tt.want, pathmath.CommonPrefixLength(tt.b, tt.a), "must be symmetric")
		})
	}
}
