// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package finder locates launch targets by name below an ancestor of the
// working directory and ranks the matches.
//
// A lookup is described by a [Query]: the origin directory, the file name to
// look for and how many levels to ascend before searching. [DeepSearch]
// walks the whole subtree below the ascended root and returns every regular
// file with exactly that name. [RankCandidates] then orders the matches so
// the file closest to the origin comes first:
//
//   - Tier-1 candidates (their path starts with the full origin path and they
//     sit at most one level deeper than a file directly inside the origin)
//     always win over the rest.
//   - Within a tier, a longer common prefix with the origin wins.
//   - Ties are broken by the shallower path, then by input order.
//
// [Locate] combines both steps into a [Report] suitable for printing.
//
// Example usage:
//
//	report, err := finder.Locate(ctx, finder.Query{
//		Origin: cwd,
//		Name:   "amca.py",
//		Depth:  4,
//	}, finder.Options{})
//	if err != nil {
//		return err
//	}
//	if report.Best == "" {
//		fmt.Println("nothing found below", report.Root)
//	}
package finder
