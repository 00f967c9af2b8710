// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads amca-finder settings.
//
// Settings are layered: hardcoded defaults, then an optional JSON or YAML
// file (format picked by extension), then environment variables. A file is
// checked against an embedded JSON schema before it is decoded, so a typo
// in a key is reported instead of silently ignored.
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Target, cfg.Depth)
//
// Environment variables:
//
//	AMCA_FINDER_CONFIG_FILE  Path to the configuration file
//	AMCA_FINDER_TARGET       File name to search for
//	AMCA_FINDER_INTERPRETER  Interpreter used to run the match
//	AMCA_FINDER_DEPTH        Levels to ascend before searching
//	AMCA_FINDER_DRY_RUN      Print the command instead of running it
package config
