// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/finder"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// locateFlags holds the amca-locate flag values for one execution.
type locateFlags struct {
	configPath     string
	depth          int
	name           string
	dir            string
	table          bool
	json           bool
	skipUnreadable bool
}

// ExecuteLocate runs the amca-locate command with args (without the program
// name), writing results to out. It returns [ErrNoMatch] when nothing matched.
func ExecuteLocate(ctx context.Context, version string, log logger.Logger, out io.Writer, args []string) error {
	var f locateFlags

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [flags]",
		Short: "Show which file amca-finder would launch and why",
		Long: `Runs the same search and ranking as amca-finder and prints the ranked
candidates, best first, without launching anything.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s -d 2 --table
  %[1]s -C ~/src/project -n build.py --json`, posix.GetExecutableName()),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocate(cmd, log, &f)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "path to configuration file (JSON or YAML)")
	flags.IntVarP(&f.depth, "depth", "d", config.DefaultDepth, "directory levels to climb before searching")
	flags.StringVarP(&f.name, "name", "n", config.DefaultTarget, "exact file name to look for")
	flags.StringVarP(&f.dir, "dir", "C", "", "directory to start from (default: working directory)")
	flags.BoolVar(&f.table, "table", false, "print a markdown table")
	flags.BoolVar(&f.json, "json", false, "print JSON")
	flags.BoolVar(&f.skipUnreadable, "skip-unreadable", false, "skip directories that cannot be read")
	rootCmd.MarkFlagsMutuallyExclusive("table", "json")

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	return rootCmd.ExecuteContext(ctx)
}

func runLocate(cmd *cobra.Command, log logger.Logger, f *locateFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		if f.depth < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidDepth, f.depth)
		}
		cfg.Depth = f.depth
	}
	if flags.Changed("name") {
		cfg.Target = f.name
	}
	if flags.Changed("skip-unreadable") {
		cfg.Search.SkipUnreadable = f.skipUnreadable
	}

	origin := f.dir
	if origin == "" {
		if origin, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	if origin, err = filepath.Abs(origin); err != nil {
		return fmt.Errorf("failed to resolve %s: %w", f.dir, err)
	}

	report, err := finder.Locate(cmd.Context(),
		finder.Query{Origin: origin, Name: cfg.Target, Depth: cfg.Depth},
		finder.Options{Workers: cfg.Search.Workers, SkipUnreadable: cfg.Search.SkipUnreadable},
	)
	if err != nil {
		return err
	}

	for _, s := range report.Skipped {
		log.Warnf("Skipped unreadable directory: %s", s)
	}

	w := cmd.OutOrStdout()
	switch {
	case f.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case !report.Found():
		log.Errorf("No %s was found. Search started in: %s", report.Name, report.Root)
	case f.table:
		fmt.Fprint(w, RenderTable(report.Candidates))
	default:
		for _, c := range report.Candidates {
			fmt.Fprintln(w, c.Path)
		}
	}

	if !report.Found() {
		return ErrNoMatch
	}
	return nil
}

// RenderTable renders ranked candidates as a markdown table, best first.
func RenderTable(candidates []finder.Candidate) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Path", "EqLen", "Depth", "Tier 1"})

	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Path,
			strconv.Itoa(c.EqLen),
			strconv.Itoa(c.Depth),
			strconv.FormatBool(c.Tier1),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
