// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/gc"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Warnf formats and prints an advisory that is not an error.
	Warnf(format string, v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
//
// Warnings are printed in yellow and errors in red when the destination is a
// terminal and NO_COLOR is unset.
type CLILogger struct {
	mu     sync.Mutex
	logger *log.Logger
	warn   *color.Color
	err    *color.Color
}

// NewCLILogger creates a new CLI logger with timestamps disabled, writing to stdout.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	c := &CLILogger{
		logger: log.New(os.Stdout, "", 0),
		warn:   color.New(color.FgYellow),
		err:    color.New(color.FgRed),
	}
	c.applyColor(os.Stdout)
	return c
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a formatted advisory.
func (c *CLILogger) Warnf(format string, v ...any) {
	c.mu.Lock()
	msg := c.warn.Sprintf(format, v...)
	c.mu.Unlock()
	c.logger.Print(msg)
}

// Errorf prints a formatted error message.
func (c *CLILogger) Errorf(format string, v ...any) {
	c.mu.Lock()
	msg := c.err.Sprintf(format, v...)
	c.mu.Unlock()
	c.logger.Print(msg)
}

// SetOutput sets the output destination for the CLI logger.
// Colors are re-evaluated for the new destination.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.applyColor(w)
	c.logger.SetOutput(w)
}

func (c *CLILogger) applyColor(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
		c.warn.EnableColor()
		c.err.EnableColor()
		return
	}
	c.warn.DisableColor()
	c.err.DisableColor()
}

// isTerminal reports whether w is a terminal, including Cygwin/MSYS ptys.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// MCPLogger implements Logger for [MCP] server mode.
// It can be silenced entirely, since MCP communication happens over stdio,
// or configured to write structured logs to a separate destination such as stderr.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// logEntry is one JSON log line.
type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewMCPLogger creates a new [MCP] logger.
// A nil writer discards output. Set silent=true to suppress all output.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an info message in JSON format.
func (m *MCPLogger) Printf(format string, v ...any) { m.write("info", fmt.Sprintf(format, v...)) }

// Println logs an info message in JSON format. Operands are separated by spaces.
func (m *MCPLogger) Println(v ...any) {
	m.write("info", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Warnf formats and logs a warning message in JSON format.
func (m *MCPLogger) Warnf(format string, v ...any) { m.write("warning", fmt.Sprintf(format, v...)) }

// Errorf formats and logs an error message in JSON format.
func (m *MCPLogger) Errorf(format string, v ...any) { m.write("error", fmt.Sprintf(format, v...)) }

// write encodes one entry into a pooled buffer and writes it as a single line.
func (m *MCPLogger) write(level, msg string) {
	if m.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(logEntry{Level: level, Message: msg}); err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.writer.Write(buf.Bytes())
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
