// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (relative slash paths) below root. Paths ending
// in "/" become directories.
func makeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("print('hi')\n"), 0o644))
	}
}

func TestSearch(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root,
		"amca.py",
		"proj/amca.py",
		"proj/src/deep/deeper/amca.py",
		"proj/src/main.cpp",
		"proj/AMCA.py",
		"other/amca.pyc",
		"other/amca.py/",
		"empty/",
	)

	res, err := finder.Search(context.Background(), root, "amca.py", finder.Options{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(root), res.Root)
	assert.Equal(t, []string{
		filepath.Join(root, "amca.py"),
		filepath.Join(root, "proj", "amca.py"),
		filepath.Join(root, "proj", "src", "deep", "deeper", "amca.py"),
	}, res.Files, "only exact, case-sensitive regular-file matches")
	assert.Empty(t, res.Errors)
}

func TestSearch_NoMatches(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/b/c/readme.md")

	res, err := finder.Search(context.Background(), root, "amca.py", finder.Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
}

func TestSearch_RootErrors(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "file.txt")

	tests := []struct {
		name string
		root string
	}{
		{name: "Missing root", root: filepath.Join(root, "does-not-exist")},
		{name: "Root is a file", root: filepath.Join(root, "file.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finder.Search(context.Background(), tt.root, "amca.py", finder.Options{SkipUnreadable: true})
			var terr *finder.TraversalError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.root, terr.Path)
		})
	}
}

func TestSearch_Cancelled(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/amca.py")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := finder.Search(ctx, root, "amca.py", finder.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_SymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	makeTree(t, root, "proj/amca.py")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "proj", "loop")))
	require.NoError(t, os.Symlink(filepath.Join(root, "proj"), filepath.Join(root, "alias")))

	res, err := finder.Search(context.Background(), root, "amca.py", finder.Options{})
	require.NoError(t, err)

	// proj is reachable through both root/proj and root/alias; it is read once.
	require.Len(t, res.Files, 1)
	assert.Equal(t, "amca.py", filepath.Base(res.Files[0]))
}

func TestSearch_SymlinkedFileAndDanglingLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	makeTree(t, root, "real/script.py", "linked/", "broken/")
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "script.py"), filepath.Join(root, "linked", "amca.py")))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "broken", "amca.py")))

	res, err := finder.Search(context.Background(), root, "amca.py", finder.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "linked", "amca.py")}, res.Files)
}

func TestSearch_UnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root can read every directory")
	}

	root := t.TempDir()
	makeTree(t, root, "open/amca.py", "locked/amca.py")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	t.Run("Fails by default", func(t *testing.T) {
		_, err := finder.Search(context.Background(), root, "amca.py", finder.Options{})
		var terr *finder.TraversalError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, locked, terr.Path)
		assert.True(t, errors.Is(err, os.ErrPermission))
	})

	t.Run("Skips when asked", func(t *testing.T) {
		res, err := finder.Search(context.Background(), root, "amca.py", finder.Options{SkipUnreadable: true})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "open", "amca.py")}, res.Files)
		require.Len(t, res.Errors, 1)
	})
}

func TestDeepSearch(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "tools/amca.py", "ws/game/src/")
	origin := filepath.Join(root, "ws", "game", "src")

	tests := []struct {
		name  string
		depth int
		want  int
	}{
		{name: "Depth 0 searches only origin", depth: 0, want: 0},
		{name: "Depth 2 stops at ws", depth: 2, want: 0},
		{name: "Depth 3 reaches root", depth: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := finder.Query{Origin: origin, Name: "amca.py", Depth: tt.depth}
			res, err := finder.DeepSearch(context.Background(), q, finder.Options{})
			require.NoError(t, err)
			assert.Equal(t, q.Root(), res.Root)
			assert.Len(t, res.Files, tt.want)
		})
	}
}
