// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finder

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/pathmath"
	"golang.org/x/sync/errgroup"
)

// Query describes a single lookup. It is not modified by the search.
type Query struct {
	// Origin is the directory the lookup starts from, usually the working directory.
	Origin string
	// Name is the exact, case-sensitive file name to look for.
	Name string
	// Depth is how many levels to ascend from Origin before searching.
	Depth int
}

// Root returns the directory the search actually walks.
func (q Query) Root() string { return pathmath.Ascend(q.Origin, q.Depth) }

// Options tunes how a search walks the filesystem.
type Options struct {
	// Workers bounds how many directories are read concurrently.
	// Zero or less uses runtime.NumCPU().
	Workers int
	// SkipUnreadable records unreadable directories in Result.Errors and keeps
	// walking instead of failing the whole search.
	SkipUnreadable bool
}

// Result holds every match of one search.
type Result struct {
	// Root is the directory that was walked.
	Root string
	// Files are the matching paths, sorted.
	Files []string
	// Errors holds the directories skipped when Options.SkipUnreadable is set.
	Errors []error
}

// dirRef is a directory queued for reading. key is its symlink-free location
// and identifies the directory for cycle detection.
type dirRef struct {
	path string
	key  string
}

// listing is what reading one directory produced.
type listing struct {
	dirs  []dirRef
	files []string
	err   error
}

// DeepSearch ascends q.Depth levels from q.Origin and searches the subtree
// below for files named q.Name.
func DeepSearch(ctx context.Context, q Query, opts Options) (*Result, error) {
	return Search(ctx, q.Root(), q.Name, opts)
}

// Search walks every directory below root and collects the regular files
// whose base name equals name.
//
// Directories are processed level by level from an explicit worklist; each
// level is read by a bounded pool of goroutines. Symbolic links to
// directories are followed, but every directory is read at most once, so
// link cycles terminate. Search only returns once every reachable directory
// has been read.
//
// By default the first unreadable directory aborts the search with a
// *TraversalError. With opts.SkipUnreadable the error is recorded and the
// walk goes on. A root that is missing or not a directory is always an error.
func Search(ctx context.Context, root, name string, opts Options) (*Result, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &TraversalError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &TraversalError{Path: root, Err: errors.New("not a directory")}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := &Result{Root: root, Files: make([]string, 0)}
	rootKey := resolve(root)
	visited := map[string]struct{}{rootKey: {}}
	pending := []dirRef{{path: root, key: rootKey}}

	for len(pending) > 0 {
		listings := make([]listing, len(pending))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, dir := range pending {
			g.Go(func() error {
				l, err := readDir(gctx, dir, name)
				if err != nil && !opts.SkipUnreadable {
					return err
				}
				listings[i] = l
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var next []dirRef
		for _, l := range listings {
			if l.err != nil {
				result.Errors = append(result.Errors, l.err)
			}
			result.Files = append(result.Files, l.files...)
			for _, d := range l.dirs {
				if _, seen := visited[d.key]; seen {
					continue
				}
				visited[d.key] = struct{}{}
				next = append(next, d)
			}
		}
		pending = next
	}

	slices.Sort(result.Files)
	return result, nil
}

// readDir lists one directory. On failure the returned listing carries the
// error as well, so callers that skip unreadable directories can record it.
func readDir(ctx context.Context, dir dirRef, name string) (listing, error) {
	if err := ctx.Err(); err != nil {
		return listing{}, err
	}

	entries, err := os.ReadDir(dir.path)
	if err != nil {
		terr := &TraversalError{Path: dir.path, Err: err}
		return listing{err: terr}, terr
	}

	var l listing
	for _, entry := range entries {
		path := filepath.Join(dir.path, entry.Name())
		typ := entry.Type()
		key := filepath.Join(dir.key, entry.Name())

		if typ&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				// dangling link
				continue
			}
			typ = target.Mode().Type()
			key = resolve(path)
		}

		switch {
		case typ.IsDir():
			l.dirs = append(l.dirs, dirRef{path: path, key: key})
		case typ.IsRegular() && entry.Name() == name:
			l.files = append(l.files, path)
		}
	}
	return l, nil
}

// resolve returns path with all symbolic links evaluated, or the cleaned
// path when that fails.
func resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return filepath.Clean(path)
}
