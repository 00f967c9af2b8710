// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// amca-locate shows which file amca-finder would launch, and why, without
// running anything.
//
// # Usage
//
//	amca-locate [FLAGS]
//
// # Flags
//
//	-d, --depth int         directory levels to climb before searching (default 4)
//	-n, --name string       exact file name to look for (default "amca.py")
//	-C, --dir string        directory to start from (default: working directory)
//	    --table             print a markdown table
//	    --json              print JSON
//	    --skip-unreadable   skip directories that cannot be read
//	    --config string     path to configuration file (JSON or YAML)
//
// Candidates are printed best first. The exit code is 1 when nothing matched.
package main
