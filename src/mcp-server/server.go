// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/amca-finder/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version the server advertises.
func GetVersion() string { return appVersion }

// Run executes the server command with args (without the program name).
// configFile seeds the --config flag; an empty value falls back to
// AMCA_FINDER_CONFIG_FILE.
func Run(ctx context.Context, version, configFile string, args []string) error {
	if version != "" {
		appVersion = version
	}

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	rootCmd := NewCLIFramework(configFile, appVersion).BuildRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
