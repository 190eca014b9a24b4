package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = old
	return <-done
}

// withWorkspace points --project at an initialized temporary workspace.
func withWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".taskburn", "tasks"), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	old := projectPath
	projectPath = dir
	t.Cleanup(func() { projectPath = old })
	return dir
}

func writeTaskLog(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, ".taskburn", "tasks", name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// execute runs the root command with args and fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	burndownFile, burndownJSON = "", false
	watchFile = ""
	holidaysYear, holidaysScope, calendarJSON = 0, "", false
	initTimezone = ""
	logLevel = "error"

	var err error
	out := captureStdout(t, func() {
		RootCmd.SetArgs(append([]string{"--project=" + projectPath}, args...))
		err = RootCmd.Execute()
	})
	RootCmd.SetArgs(nil)
	return out, err
}

const releaseTaskLog = `task: release-1.2
title: Release 1.2
logs:
  - start_time: "2024-03-04"
    end_time: "2024-03-18"
    recorded_at: "2024-03-04"
    progress: 0
  - start_time: "2024-03-04"
    end_time: "2024-03-18"
    recorded_at: "2024-03-08"
    progress: 40
`
