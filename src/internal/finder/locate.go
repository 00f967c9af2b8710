// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finder

import "context"

// Report is the outcome of one lookup.
type Report struct {
	Origin     string      `json:"origin"`
	Root       string      `json:"root"`
	Name       string      `json:"name"`
	Best       string      `json:"best"`
	Candidates []Candidate `json:"candidates"`
	// Skipped lists directories that could not be read when
	// Options.SkipUnreadable was set.
	Skipped []string `json:"skipped,omitempty"`
}

// Found reports whether any candidate matched.
func (r *Report) Found() bool { return r.Best != "" }

// Locate runs a deep search for q and ranks the matches against q.Origin.
// The search runs once; its result backs both Best and Candidates.
func Locate(ctx context.Context, q Query, opts Options) (*Report, error) {
	res, err := DeepSearch(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Origin:     q.Origin,
		Root:       res.Root,
		Name:       q.Name,
		Candidates: RankCandidates(res.Files, q.Origin),
	}
	if len(report.Candidates) > 0 {
		report.Best = report.Candidates[0].Path
	}
	for _, e := range res.Errors {
		report.Skipped = append(report.Skipped, e.Error())
	}
	return report, nil
}
