package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stanpkg/stanpkg/internal/output"
)

// executeRoot runs the root command with args and returns what the
// command printed through the output package.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	prev := output.SetOutput(&buf)
	defer output.SetOutput(prev)

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// isolateConfig points the config lookup at a file under a fresh temp dir
// and returns its path. The file is not created.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".stanpkg", "config.yaml")
	t.Setenv("STANPKG_CONFIG", path)
	return path
}
