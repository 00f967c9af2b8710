// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/amca-finder/src/launcher"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	"github.com/spf13/cobra"
)

// invalidDepthMessage is printed before exiting on a bad -ms value.
const invalidDepthMessage = "Please enter a valid integer >= 0"

// RunLauncher runs the amca-finder command with args (without the program
// name) and returns the exit code to use. opts are passed to the launcher.
//
// Flag parsing is disabled: args, -ms included, reach the script verbatim.
// Configuration is read from AMCA_FINDER_CONFIG_FILE and the environment.
func RunLauncher(ctx context.Context, version string, log logger.Logger, args []string, opts ...launcher.Option) (int, error) {
	code := 1

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [-ms DEPTH] [ARGS...]",
		Short: "Find the nearest amca.py above the working directory and run it",
		Long: `Climbs DEPTH directories (default 4) from the working directory, searches
that subtree for the target script, picks the best match and runs it with the
interpreter. Every argument, -ms included, is passed on to the script.`,
		Version:            version,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			code, err = launch(cmd.Context(), log, args, opts)
			return err
		},
	}
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	return code, err
}

func launch(ctx context.Context, log logger.Logger, args []string, opts []launcher.Option) (int, error) {
	cfg, err := config.Load("")
	if err != nil {
		log.Errorf("Error loading configuration: %v", err)
		return 1, err
	}

	depth, err := ParseDepth(args, cfg.Depth)
	if err != nil {
		log.Errorf(invalidDepthMessage)
		return 1, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("failed to get working directory: %w", err)
	}

	code, err := launcher.New(cfg, log, opts...).Run(ctx, cwd, depth, args)
	switch {
	case err == nil, errors.Is(err, launcher.ErrNotFound):
		// Not-found has already been reported.
	case errors.Is(err, context.Canceled):
	default:
		log.Errorf("Error: %v", err)
	}
	return code, err
}
