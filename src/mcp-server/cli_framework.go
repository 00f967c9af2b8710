// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	"github.com/H0llyW00dzZ/amca-finder/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// CLIFramework wraps the MCP server in a Cobra command.
//
// Running the command without flags serves MCP over the configured streams.
// --instructions prints the rendered server instructions and exits.
type CLIFramework struct {
	configFile string
	version    string
	embed      templates.EmbedFS
	log        logger.Logger

	stdin  io.Reader
	stdout io.Writer
}

// NewCLIFramework returns a framework serving on os.Stdin/os.Stdout and
// logging JSON lines to stderr.
func NewCLIFramework(configFile, version string) *CLIFramework {
	return &CLIFramework{
		configFile: configFile,
		version:    version,
		embed:      templates.MagicEmbed,
		log:        logger.NewMCPLogger(os.Stderr, false),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}
}

// BuildRootCommand returns the root command.
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()
	var showInstructions bool

	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "MCP server that shows which script amca-finder would launch",
		Long: fmt.Sprintf(`Serves the locate_launch_target tool over MCP on stdio.

Configuration is read from --config or %s.`, config.EnvConfigFile),
		Example: fmt.Sprintf(`  %[1]s
  %[1]s --config ~/.config/amca-finder.yaml
  %[1]s --instructions`, exeName),
		Version:       cf.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showInstructions {
				return cf.printInstructions(cmd.OutOrStdout())
			}
			return cf.startMCPServer(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to configuration file (JSON or YAML)")

	return rootCmd
}

// buildServer loads the configuration and assembles the server.
func (cf *CLIFramework) buildServer() (*server.MCPServer, error) {
	cfg, err := config.Load(cf.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	tools := createTools()
	instructions, err := loadInstructions(cf.embed, tools)
	if err != nil {
		return nil, err
	}

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithLogger(cf.log).
		WithVersion(cf.version).
		WithTools(tools...).
		WithResources(createResources(cf.version)...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build MCP server: %w", err)
	}
	return s, nil
}

// startMCPServer serves until ctx is cancelled or the input stream ends.
// Cancellation is a clean shutdown.
func (cf *CLIFramework) startMCPServer(ctx context.Context) error {
	s, err := cf.buildServer()
	if err != nil {
		return err
	}

	cf.log.Printf("amca-finder MCP server %s started", cf.version)
	err = server.NewStdioServer(s).Listen(ctx, cf.stdin, cf.stdout)
	if errors.Is(err, context.Canceled) {
		cf.log.Printf("amca-finder MCP server stopped")
		return nil
	}
	return err
}

// printInstructions writes the rendered instructions to w.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	instructions, err := loadInstructions(cf.embed, createTools())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, instructions)
	return err
}
