// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package finder

import "fmt"

// TraversalError reports a directory that could not be read during a search.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }
