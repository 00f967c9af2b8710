// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finder

import (
	"cmp"
	"path/filepath"
	"slices"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/pathmath"
)

// Candidate is a matched file together with the figures it was ranked by.
type Candidate struct {
	Path string `json:"path"`
	// EqLen is the length of the literal common prefix with the origin.
	EqLen int `json:"eqlen"`
	// Depth is the number of segments in Path.
	Depth int `json:"depth"`
	// Tier1 is set when Path starts with the whole origin and is at most
	// one level deeper than a file placed directly inside the origin.
	Tier1 bool `json:"tier1"`
}

// Score computes the ranking figures of path relative to origin.
func Score(path, origin string) Candidate {
	origin = filepath.Clean(origin)
	eqlen := pathmath.CommonPrefixLength(path, origin)
	depth := pathmath.Depth(path)
	// +1: a file directly inside origin is one segment deeper than origin.
	expected := pathmath.Depth(origin) + 1

	return Candidate{
		Path:  path,
		EqLen: eqlen,
		Depth: depth,
		Tier1: eqlen == len(origin) && depth-expected < 2,
	}
}

// RankCandidates scores every path against origin and returns them best
// first. The sort is stable, so equal candidates keep their input order.
// The input slice is not modified.
func RankCandidates(paths []string, origin string) []Candidate {
	ranked := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		ranked = append(ranked, Score(p, origin))
	}
	slices.SortStableFunc(ranked, compareCandidates)
	return ranked
}

// Rank returns the best of paths relative to origin, or "" when paths is empty.
func Rank(paths []string, origin string) string {
	ranked := RankCandidates(paths, origin)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Path
}

// compareCandidates orders tier-1 first, then by longer common prefix, then
// by shallower depth.
func compareCandidates(a, b Candidate) int {
	if a.Tier1 != b.Tier1 {
		if a.Tier1 {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.EqLen, a.EqLen); c != 0 {
		return c
	}
	return cmp.Compare(a.Depth, b.Depth)
}
