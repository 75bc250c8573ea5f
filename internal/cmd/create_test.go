package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanpkg/stanpkg/internal/skeleton"
	"github.com/stanpkg/stanpkg/internal/testutil"
)

func TestNewCreateCmd(t *testing.T) {
	cmd := NewCreateCmd()

	assert.Equal(t, "create", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, flag := range []string{
		"path", "overwrite", "auto-config", "dry-run", "title",
		"description", "pkg-version", "author", "maintainer", "license",
		"output",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}

	assert.Equal(t, "f", cmd.Flags().Lookup("overwrite").Shorthand)
	assert.Equal(t, ".", cmd.Flags().Lookup("path").DefValue)
}

func TestCreate_WritesSkeletonAndTree(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	out, err := executeRoot(t, "create", "demo",
		testutil.ModelFixture(t, "bernoulli.stan"),
		"--path", tmpDir)
	require.NoError(t, err)

	pkgDir := filepath.Join(tmpDir, "demo")
	assert.FileExists(t, filepath.Join(pkgDir, skeleton.ManifestFile))
	assert.FileExists(t, filepath.Join(pkgDir, "R", "demo-package.R"))
	assert.FileExists(t, filepath.Join(pkgDir, "inst", "stan", "bernoulli.stan"))
	assert.DirExists(t, filepath.Join(pkgDir, "src"))

	assert.Contains(t, out, "package 'demo'")
	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "bernoulli.stan")
	assert.Contains(t, out, skeleton.NamespaceFile)
}

func TestCreate_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string)
		args     func(t *testing.T, dir string) []string
		wantCode int
	}{
		{
			name: "invalid package name",
			args: func(t *testing.T, dir string) []string {
				return []string{"create", "1demo", "--path", dir}
			},
			wantCode: ExitValidationError,
		},
		{
			name: "missing model file",
			args: func(t *testing.T, dir string) []string {
				return []string{"create", "demo", filepath.Join(dir, "absent.stan"), "--path", dir}
			},
			wantCode: ExitNotFound,
		},
		{
			name: "invalid model name",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, dir, "bad-name.stan", "model {}\n")
			},
			args: func(t *testing.T, dir string) []string {
				return []string{"create", "demo", filepath.Join(dir, "bad-name.stan"), "--path", dir}
			},
			wantCode: ExitValidationError,
		},
		{
			name: "target exists",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.Mkdir(filepath.Join(dir, "demo"), 0o755))
			},
			args: func(t *testing.T, dir string) []string {
				return []string{"create", "demo", "--path", dir}
			},
			wantCode: ExitAlreadyExists,
		},
		{
			name: "destination is a file",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, dir, "dest", "")
			},
			args: func(t *testing.T, dir string) []string {
				return []string{"create", "demo", "--path", filepath.Join(dir, "dest")}
			},
			wantCode: ExitWriteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			tmpDir, cleanup := testutil.TempDir(t)
			defer cleanup()

			if tt.setup != nil {
				tt.setup(t, tmpDir)
			}

			_, err := executeRoot(t, tt.args(t, tmpDir)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ExitCodeFromError(err))
		})
	}
}

func TestCreate_Overwrite(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := executeRoot(t, "create", "demo", "--path", tmpDir)
	require.NoError(t, err)

	out, err := executeRoot(t, "create", "demo", "--path", tmpDir, "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, "Overwrote")
}

func TestCreate_DryRunWritesNothing(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	out, err := executeRoot(t, "create", "demo", "--path", tmpDir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Would create")
	assert.Contains(t, out, skeleton.ManifestFile)
	assert.NoDirExists(t, filepath.Join(tmpDir, "demo"))
}

func TestCreate_ManifestDefaultsFromConfig(t *testing.T) {
	configPath := isolateConfig(t)
	testutil.WriteFile(t, filepath.Dir(configPath), filepath.Base(configPath),
		"author: Ada Lovelace\nmaintainer: Ada Lovelace <ada@example.com>\nlicense: MIT\n")

	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := executeRoot(t, "create", "demo", "--path", tmpDir, "--license", "GPL-3")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(tmpDir, "demo", skeleton.ManifestFile))
	require.NoError(t, err)
	defer f.Close()

	fields, err := skeleton.ParseManifest(f)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", fields["Author"])
	assert.Equal(t, "Ada Lovelace <ada@example.com>", fields["Maintainer"])
	assert.Equal(t, "GPL-3", fields["License"], "flag takes precedence over config")
}

func TestCreate_InvalidConfigFails(t *testing.T) {
	configPath := isolateConfig(t)
	testutil.WriteFile(t, filepath.Dir(configPath), filepath.Base(configPath),
		"maintainer: nobody\n")

	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := executeRoot(t, "create", "demo", "--path", tmpDir)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(tmpDir, "demo"))
}

func TestTreeEntries(t *testing.T) {
	result := &skeleton.Result{
		Files: []string{"DESCRIPTION", "NAMESPACE"},
		Dirs:  []string{"R", "inst/stan", "src"},
		Models: []skeleton.Model{
			{Name: "bernoulli", Dest: "inst/stan/bernoulli.stan"},
		},
	}

	entries := treeEntries(result)

	assert.Len(t, entries, 6)
	assert.Contains(t, entries, "src/")
	assert.Contains(t, entries, "inst/stan/")
	assert.Contains(t, entries, "inst/stan/bernoulli.stan")
	assert.Contains(t, entries, "DESCRIPTION")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "", firstNonEmpty())
}

func TestCreate_StructuredOutput(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	out, err := executeRoot(t, "create", "demo",
		testutil.ModelFixture(t, "bernoulli.stan"),
		"--path", tmpDir, "--dry-run", "-o", "json")
	require.NoError(t, err)

	var result skeleton.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "demo", result.Package)
	assert.True(t, result.DryRun)
	require.Len(t, result.Models, 1)
	assert.Equal(t, "inst/stan/bernoulli.stan", result.Models[0].Dest)

	out, err = executeRoot(t, "create", "demo", "--path", tmpDir, "--dry-run", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "package: demo")
}

func TestCreate_UnknownOutputFormat(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := executeRoot(t, "create", "demo", "--path", tmpDir, "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(tmpDir, "demo"))
}

func TestCreate_MalformedConfigFails(t *testing.T) {
	configPath := isolateConfig(t)
	testutil.WriteFile(t, filepath.Dir(configPath), filepath.Base(configPath), "author: [unterminated\n")

	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := executeRoot(t, "create", "demo", "--path", tmpDir)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
