package skeleton

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
)

// writeFile writes content to path, closing the file on every exit path.
func writeFile(path string, content []byte, perm fs.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return oerrors.WriteFailure(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = oerrors.WriteFailure(path, cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return oerrors.WriteFailure(path, err)
	}
	return nil
}

// copyFile copies src to dst byte for byte. Both files are closed on every
// exit path. Copying a file onto itself is a no-op.
func copyFile(src, dst string) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return sourceError(src, err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return sourceError(src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return oerrors.WriteFailure(dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = oerrors.WriteFailure(dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return oerrors.WriteFailure(dst, err)
	}
	return nil
}

// mkdirAll creates dir and its parents.
func mkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WriteFailure(dir, err)
	}
	return nil
}

func sourceError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewSourceNotFoundError(
			fmt.Sprintf("model file %s does not exist", path),
			path,
			"Check the path; model files are read relative to the working directory.")
	}
	return oerrors.NewSourceNotFoundError(
		fmt.Sprintf("model file %s is not readable: %v", path, err),
		path,
		"Check the file permissions.")
}

// resolveModels validates model paths before anything is written. Each
// path must name a readable regular .stan file with a valid, unique base name.
func resolveModels(paths []string) ([]Model, error) {
	models := make([]Model, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, sourceError(p, err)
		}
		if !info.Mode().IsRegular() {
			return nil, oerrors.NewSourceNotFoundError(
				fmt.Sprintf("model path %s is not a regular file", p), p, "")
		}

		f, err := os.Open(p)
		if err != nil {
			return nil, sourceError(p, err)
		}
		_ = f.Close()

		base := filepath.Base(p)
		if !strings.HasSuffix(base, ModelExt) {
			return nil, oerrors.NewInvalidNameError(
				fmt.Sprintf("model file %s must have the %s extension", p, ModelExt),
				"Model", "")
		}

		name := ModelName(base)
		if err := ValidateModelName(name); err != nil {
			return nil, err
		}
		if prev, ok := seen[name]; ok {
			return nil, oerrors.NewInvalidNameError(
				fmt.Sprintf("model name %q is used by both %s and %s", name, prev, p),
				"Model", "Model names are derived from file names and must be unique.")
		}
		seen[name] = p

		models = append(models, Model{
			Name:   name,
			Source: p,
			Dest:   ModelDir + "/" + base,
		})
	}

	return models, nil
}
