// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package launcher finds the best matching script above the working
// directory and runs it with an interpreter.
//
// One call to [Launcher.Run] performs the whole flow: a progress watchdog is
// started on the search root, the tree is searched and ranked once, the
// watchdog is stopped and joined, and the winning script is handed to an
// [Executor]. The interpreter's exit code is returned verbatim.
//
//	l := launcher.New(cfg, logger.NewCLILogger())
//	code, err := l.Run(ctx, cwd, 4, os.Args[1:])
package launcher
