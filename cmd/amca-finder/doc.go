// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// amca-finder finds the nearest amca.py above the working directory and runs
// it with Python, forwarding every argument.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/amca-finder/cmd/amca-finder@latest
//
// # Usage
//
//	amca-finder [-ms DEPTH] [ARGS...]
//
// The working directory is climbed DEPTH levels (default 4) and the subtree
// below is searched for amca.py. When several files match, the one under the
// working directory and closest to it wins. The script is then run as
//
//	python <match> [ARGS...]
//
// with -ms included in ARGS, since amca.py understands it too. If the search
// takes longer than five seconds a hint about -ms is printed.
//
// # Exit Codes
//
//	n    the script's own exit code
//	1    invalid -ms value, nothing found, or the interpreter could not start
//	130  interrupted
//
// # Environment Variables
//
//	AMCA_FINDER_CONFIG_FILE  Path to a JSON or YAML configuration file
//	AMCA_FINDER_TARGET       File name to search for (default amca.py)
//	AMCA_FINDER_INTERPRETER  Interpreter (default python, then python3)
//	AMCA_FINDER_DEPTH        Default depth when -ms is not given
//	AMCA_FINDER_DRY_RUN      Print the command instead of running it
//	NO_COLOR                 Disable colored warnings
package main
