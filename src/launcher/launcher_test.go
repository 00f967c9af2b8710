// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package launcher_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/launcher"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records every command and returns a fixed result.
type fakeExecutor struct {
	mu    sync.Mutex
	calls []launcher.Command
	code  int
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, cmd launcher.Command) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)
	return f.code, f.err
}

// tree creates files (relative, slash separated) under a fresh temp dir and
// returns its symlink-free absolute path.
func tree(t *testing.T, files ...string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	return root
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Interpreter = "testpy"
	cfg.Search.Workers = 2
	return cfg
}

func newLogger() (*logger.CLILogger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)
	return log, &buf
}

func TestRun_LaunchesBestMatch(t *testing.T) {
	root := tree(t,
		"proj/amca.py",
		"proj/other/deep/er/amca.py",
		"proj/work/sub/.keep",
	)
	cwd := filepath.Join(root, "proj", "work", "sub")

	exec := &fakeExecutor{code: 7}
	log, _ := newLogger()
	l := launcher.New(testConfig(), log, launcher.WithExecutor(exec))

	code, err := l.Run(context.Background(), cwd, 2, []string{"-ms", "2", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, 7, code, "child exit code is passed through")

	require.Len(t, exec.calls, 1)
	assert.Equal(t, launcher.Command{
		Interpreter: "testpy",
		Script:      filepath.Join(root, "proj", "amca.py"),
		Args:        []string{"-ms", "2", "--verbose"},
	}, exec.calls[0])
}

func TestRun_PrefersMatchUnderOrigin(t *testing.T) {
	root := tree(t,
		"a/amca.py",
		"a/b/amca.py",
		"a/b/c/.keep",
	)
	exec := &fakeExecutor{}
	log, _ := newLogger()
	l := launcher.New(testConfig(), log, launcher.WithExecutor(exec))

	code, err := l.Run(context.Background(), filepath.Join(root, "a", "b"), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.Len(t, exec.calls, 1)
	assert.Equal(t, filepath.Join(root, "a", "b", "amca.py"), exec.calls[0].Script)
}

func TestRun_NotFound(t *testing.T) {
	root := tree(t, "x/y/readme.md")
	cwd := filepath.Join(root, "x", "y")

	exec := &fakeExecutor{}
	log, out := newLogger()
	l := launcher.New(testConfig(), log, launcher.WithExecutor(exec))

	code, err := l.Run(context.Background(), cwd, 1, nil)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, launcher.ErrNotFound)
	assert.Empty(t, exec.calls, "nothing is launched")
	assert.Contains(t, out.String(), "No amca.py was found. Search started in: "+filepath.Join(root, "x"))
}

func TestRun_CustomTarget(t *testing.T) {
	root := tree(t, "tools/run.py", "tools/amca.py")
	cfg := testConfig()
	cfg.Target = "run.py"

	exec := &fakeExecutor{}
	log, _ := newLogger()
	_, err := launcher.New(cfg, log, launcher.WithExecutor(exec)).Run(context.Background(), filepath.Join(root, "tools"), 0, nil)
	require.NoError(t, err)
	require.Len(t, exec.calls, 1)
	assert.Equal(t, filepath.Join(root, "tools", "run.py"), exec.calls[0].Script)
}

func TestRun_DryRun(t *testing.T) {
	root := tree(t, "my project/amca.py")

	exec := &fakeExecutor{code: 3}
	log, out := newLogger()
	l := launcher.New(testConfig(), log, launcher.WithExecutor(exec), launcher.WithDryRun(true))

	code, err := l.Run(context.Background(), filepath.Join(root, "my project"), 0, []string{"arg one"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, exec.calls)

	script := filepath.Join(root, "my project", "amca.py")
	assert.Contains(t, out.String(), `testpy "`+script+`" "arg one"`)
}

func TestRun_DryRunFromConfig(t *testing.T) {
	root := tree(t, "amca.py")
	cfg := testConfig()
	cfg.DryRun = true

	exec := &fakeExecutor{}
	log, _ := newLogger()
	code, err := launcher.New(cfg, log, launcher.WithExecutor(exec)).Run(context.Background(), root, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, exec.calls)
}

func TestRun_ExecutorError(t *testing.T) {
	root := tree(t, "amca.py")
	boom := errors.New("boom")
	exec := &fakeExecutor{code: 1, err: boom}
	log, _ := newLogger()

	code, err := launcher.New(testConfig(), log, launcher.WithExecutor(exec)).Run(context.Background(), root, 0, nil)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, boom)
}

func TestRun_MissingRoot(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "gone")
	exec := &fakeExecutor{}
	log, _ := newLogger()

	code, err := launcher.New(testConfig(), log, launcher.WithExecutor(exec)).Run(context.Background(), cwd, 0, nil)
	assert.Equal(t, 1, code)
	require.Error(t, err)
	assert.NotErrorIs(t, err, launcher.ErrNotFound)
	assert.Empty(t, exec.calls)
}

func TestRun_Cancelled(t *testing.T) {
	root := tree(t, "amca.py")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExecutor{}
	log, _ := newLogger()
	code, err := launcher.New(testConfig(), log, launcher.WithExecutor(exec)).Run(ctx, root, 0, nil)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, exec.calls)
}

func TestNew_NilConfig(t *testing.T) {
	log, _ := newLogger()
	assert.NotNil(t, launcher.New(nil, log))
}
