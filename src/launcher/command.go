// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package launcher

import (
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/gc"
)

// Command is one interpreter invocation. It is passed to the operating
// system as an argument vector, never through a shell.
type Command struct {
	Interpreter string
	Script      string
	Args        []string
}

// Argv returns the arguments that follow the interpreter.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Script)
	return append(argv, c.Args...)
}

// String renders the command for display, quoting words a shell would split.
func (c Command) String() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(quote(c.Interpreter))
	for _, a := range c.Argv() {
		buf.WriteByte(' ')
		buf.WriteString(quote(a))
	}
	return buf.String()
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\$`;&|<>*?()") {
		return strconv.Quote(s)
	}
	return s
}
