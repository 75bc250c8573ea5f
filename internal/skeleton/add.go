package skeleton

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
)

// AddModels copies model files into the ModelDir of an existing skeleton.
func AddModels(dir string, paths []string, overwrite bool) (*Result, error) {
	pkg, err := readPackageName(dir)
	if err != nil {
		return nil, err
	}
	logger := output.SkeletonLogger(pkg)

	models, err := resolveModels(paths)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Dir:     dir,
		Package: pkg,
		Models:  models,
	}

	for _, m := range models {
		dest := filepath.Join(dir, filepath.FromSlash(m.Dest))
		if _, err := os.Stat(dest); err == nil {
			if !overwrite {
				return nil, oerrors.NewAlreadyExistsError(
					fmt.Sprintf("model %q already exists in %s", m.Name, ModelDir),
					dest,
					"Pass --overwrite to replace it.")
			}
			result.Overwritten = true
		}
	}

	if err := mkdirAll(filepath.Join(dir, filepath.FromSlash(ModelDir))); err != nil {
		return nil, err
	}

	for _, m := range models {
		if err := copyFile(m.Source, filepath.Join(dir, filepath.FromSlash(m.Dest))); err != nil {
			return nil, err
		}
		logger.Debug("copied model", "name", m.Name, "from", m.Source)
	}

	return result, nil
}

// ListModels returns the model files present in the ModelDir of an
// existing skeleton, sorted by name.
func ListModels(dir string) ([]Model, error) {
	if _, err := readPackageName(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(dir, filepath.FromSlash(ModelDir)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ModelDir, err)
	}

	var models []Model
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ModelExt {
			continue
		}
		models = append(models, Model{
			Name: ModelName(e.Name()),
			Dest: ModelDir + "/" + e.Name(),
		})
	}
	return models, nil
}

// readPackageName reads the Package field of the manifest in dir.
func readPackageName(dir string) (string, error) {
	manifest := filepath.Join(dir, ManifestFile)
	f, err := os.Open(manifest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oerrors.NewSourceNotFoundError(
				fmt.Sprintf("%s is not a package skeleton: no %s", dir, ManifestFile),
				dir,
				"Run 'stanpkg create' first.")
		}
		return "", oerrors.NewSourceNotFoundError(
			fmt.Sprintf("%s is not a package skeleton: cannot read %s: %v", dir, ManifestFile, err),
			dir,
			"Pass the directory created by 'stanpkg create'.")
	}
	defer f.Close()

	fields, err := ParseManifest(f)
	if err != nil {
		return "", oerrors.NewValidationError(err.Error(), manifest, "", "")
	}
	return fields["Package"], nil
}
