// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Command
		argv   []string
		render string
	}{
		{
			name:   "no args",
			cmd:    Command{Interpreter: "python", Script: "/srv/amca.py"},
			argv:   []string{"/srv/amca.py"},
			render: "python /srv/amca.py",
		},
		{
			name:   "forwarded flags",
			cmd:    Command{Interpreter: "python3", Script: "/srv/amca.py", Args: []string{"-ms", "2", "build"}},
			argv:   []string{"/srv/amca.py", "-ms", "2", "build"},
			render: "python3 /srv/amca.py -ms 2 build",
		},
		{
			name:   "spaces are quoted",
			cmd:    Command{Interpreter: "/opt/my python/bin/python", Script: "/home/me/My Project/amca.py", Args: []string{"a b"}},
			argv:   []string{"/home/me/My Project/amca.py", "a b"},
			render: `"/opt/my python/bin/python" "/home/me/My Project/amca.py" "a b"`,
		},
		{
			name:   "empty and shell metacharacters",
			cmd:    Command{Interpreter: "python", Script: "amca.py", Args: []string{"", "$HOME", `say "hi"`}},
			argv:   []string{"amca.py", "", "$HOME", `say "hi"`},
			render: `python amca.py "" "$HOME" "say \"hi\""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.argv, tt.cmd.Argv())
			assert.Equal(t, tt.render, tt.cmd.String())
		})
	}
}

func TestCommand_ArgvDoesNotAlias(t *testing.T) {
	args := make([]string, 1, 4)
	args[0] = "x"
	cmd := Command{Interpreter: "python", Script: "s.py", Args: args}

	argv := cmd.Argv()
	argv[1] = "changed"
	assert.Equal(t, "x", cmd.Args[0])
}
