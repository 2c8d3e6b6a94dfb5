package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// StubTool writes an executable /bin/sh script with the given body into a
// temp dir and returns its path. The script receives the build tool argv as
// "$@". Tests using it are skipped on Windows.
func StubTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub build tools are shell scripts")
	}
	path := filepath.Join(t.TempDir(), "cargo")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub tool: %v", err)
	}
	return path
}

// ArgvRecorder returns a stub body that appends its argv to file, one
// invocation per line, then runs rest.
func ArgvRecorder(file, rest string) string {
	return `printf '%s\n' "$*" >> '` + file + "'\n" + rest
}
