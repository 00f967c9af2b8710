// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"slices"
	"strconv"
)

// DepthFlag selects how many directory levels to climb before searching.
const DepthFlag = "-ms"

// ParseDepth returns the value following the first [DepthFlag] in args, or
// def when the flag is absent or is the last argument. args are not modified.
func ParseDepth(args []string, def int) (int, error) {
	i := slices.Index(args, DepthFlag)
	if i < 0 || i+1 >= len(args) {
		return def, nil
	}

	raw := args[i+1]
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDepth, raw)
	}
	return n, nil
}
