package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devkit/cli/makectl/internal/testutil"
)

// useTool points makectl at stub and isolates it from any host config.
func useTool(t *testing.T, stub string) {
	t.Helper()
	t.Setenv("MAKECTL_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("MAKECTL_TOOL", stub)
	t.Setenv("MAKECTL_WORKDIR", "")
	t.Setenv("MAKECTL_LOG_LEVEL", "warn")
	t.Setenv("MAKECTL_RELAY_GRACE", "")
}

func invoke(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	argv := filepath.Join(t.TempDir(), "argv")
	useTool(t, testutil.StubTool(t, testutil.ArgvRecorder(argv, "exit 0")))

	cases := map[string][]string{
		"no args":               nil,
		"unknown command":       {"deploy"},
		"build without profile": {"build_quiet"},
		"build with two":        {"build_quiet", "release", "debug"},
		"bench with argument":   {"bench", "extra"},
		"case sensitive":        {"BENCH"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := invoke(args...)
			assert.Equal(t, ExitUsage, code)
			assert.Equal(t, "blah blah\n", stdout)
			assert.Empty(t, stderr)
		})
	}
	_, err := os.Stat(argv)
	assert.True(t, os.IsNotExist(err), "build tool must not run on usage errors")
}

func TestBuildQuietSuccess(t *testing.T) {
	useTool(t, testutil.StubTool(t, "echo 'warning: unused import' 1>&2\nexit 0"))

	code, stdout, _ := invoke("build_quiet", "release")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "building release\nall good (:\n", stdout)
}

func TestBuildQuietFailureStillExitsZero(t *testing.T) {
	useTool(t, testutil.StubTool(t, "echo 'error: could not compile `wizard`' 1>&2\nexit 101"))

	code, stdout, _ := invoke("build_quiet", "debug")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "building debug\ncargo build failed:\nerror: could not compile `wizard`\n", stdout)
}

func TestBenchRelaysStderr(t *testing.T) {
	useTool(t, testutil.StubTool(t, "echo 'perft/5 time: [0.8 s]' 1>&2\necho 'perft/6 time: [21 s]' 1>&2\nexit 3"))

	code, stdout, _ := invoke("bench")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "perft/5 time: [0.8 s]\nperft/6 time: [21 s]\n", stdout)
}

func TestMissingToolIsExecutionError(t *testing.T) {
	useTool(t, filepath.Join(t.TempDir(), "no-cargo"))

	code, stdout, stderr := invoke("build_quiet", "release")
	assert.Equal(t, ExitExecutionError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "build release")
}

func TestBadConfigIsExecutionError(t *testing.T) {
	useTool(t, testutil.StubTool(t, "exit 0"))
	t.Setenv("MAKECTL_RELAY_GRACE", "forever")

	code, stdout, stderr := invoke("bench")
	assert.Equal(t, ExitExecutionError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "relay_grace")
}

func TestBadConfigDoesNotMaskUsage(t *testing.T) {
	t.Setenv("MAKECTL_RELAY_GRACE", "forever")
	code, stdout, _ := invoke()
	assert.Equal(t, ExitUsage, code)
	assert.Equal(t, "blah blah\n", stdout)
}

func TestRepeatedInvocationsAreIdentical(t *testing.T) {
	useTool(t, testutil.StubTool(t, "echo 'error[E0308]: mismatched types' 1>&2\nexit 1"))

	_, first, _ := invoke("build_quiet", "release")
	_, second, _ := invoke("build_quiet", "release")
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestWorkdirIsUsed(t *testing.T) {
	dir := t.TempDir()
	useTool(t, testutil.StubTool(t, "test -f Cargo.toml || exit 1"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), 0o644))
	t.Setenv("MAKECTL_WORKDIR", dir)

	_, stdout, _ := invoke("build_quiet", "release")
	assert.Equal(t, "building release\nall good (:\n", stdout)
}
