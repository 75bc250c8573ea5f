// Package e2e provides end-to-end tests for the stanpkg CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stanpkgBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "stanpkg-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	stanpkgBinary = filepath.Join(tmpDir, "stanpkg")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", stanpkgBinary, "../../cmd/stanpkg")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build stanpkg binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runStanpkg runs the binary in workDir with an isolated home directory.
func runStanpkg(t *testing.T, workDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, stanpkgBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"HOME="+workDir,
		"STANPKG_CONFIG="+filepath.Join(workDir, "config.yaml"),
	)

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)

	return string(stdoutBytes), "", 0
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "fixtures", "models", name))
	require.NoError(t, err)
	return path
}

func TestE2E_Create(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, code := runStanpkg(t, tmpDir, "create", "demo",
		fixture(t, "bernoulli.stan"), fixture(t, "eight_schools.stan"))
	require.Equal(t, 0, code, "stderr: %s", stderr)

	pkgDir := filepath.Join(tmpDir, "demo")
	for _, rel := range []string{
		"DESCRIPTION",
		"NAMESPACE",
		"Read-and-delete-me",
		filepath.Join("R", "demo-package.R"),
		filepath.Join("inst", "stan", "bernoulli.stan"),
		filepath.Join("inst", "stan", "eight_schools.stan"),
	} {
		assert.FileExists(t, filepath.Join(pkgDir, rel))
	}
	assert.DirExists(t, filepath.Join(pkgDir, "src"))

	want, err := os.ReadFile(fixture(t, "bernoulli.stan"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(pkgDir, "inst", "stan", "bernoulli.stan"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Contains(t, stdout, "Created package 'demo'")
}

func TestE2E_ExitCodes(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, code := runStanpkg(t, tmpDir, "create", "9lives")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid name")

	_, _, code = runStanpkg(t, tmpDir, "create", "demo", filepath.Join(tmpDir, "missing.stan"))
	assert.Equal(t, 5, code)
	assert.NoDirExists(t, filepath.Join(tmpDir, "demo"))

	_, _, code = runStanpkg(t, tmpDir, "create", "demo")
	require.Equal(t, 0, code)

	_, stderr, code = runStanpkg(t, tmpDir, "create", "demo")
	assert.Equal(t, 6, code)
	assert.Contains(t, stderr, "already exists")

	_, _, code = runStanpkg(t, tmpDir, "create", "demo", "--overwrite")
	assert.Equal(t, 0, code)
}

func TestE2E_ConfigInitThenCreate(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, code := runStanpkg(t, tmpDir, "config", "init")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	_, stderr, code = runStanpkg(t, tmpDir, "config", "vet")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	_, stderr, code = runStanpkg(t, tmpDir, "create", "demo")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	manifest, err := os.ReadFile(filepath.Join(tmpDir, "demo", "DESCRIPTION"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "Maintainer: Your Name <you@example.com>")
}
