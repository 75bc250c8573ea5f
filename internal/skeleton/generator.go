package skeleton

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
)

// Generator creates package skeletons.
type Generator struct {
	opts Options
	log  *log.Logger
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Templates == nil {
		opts.Templates = DefaultTemplates()
	}
	return &Generator{
		opts: opts,
		log:  output.SkeletonLogger(opts.Name),
	}
}

// Generate creates the skeleton described by opts and returns its directory.
func Generate(opts Options) (*Result, error) {
	return NewGenerator(opts).Generate()
}

// Generate creates the skeleton. All inputs are validated before the
// filesystem is touched; an I/O failure afterwards leaves a partial tree.
func (g *Generator) Generate() (*Result, error) {
	name := g.opts.Name

	if err := ValidatePackageName(name); err != nil {
		return nil, err
	}

	models, err := resolveModels(g.opts.Models)
	if err != nil {
		return nil, err
	}

	desc := NewDescriptor(name).WithOverrides(g.opts.Descriptor)

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(desc); err != nil {
		return nil, err
	}

	renderer := NewRenderer(g.opts.Templates, TemplateData{
		Descriptor: desc,
		Models:     models,
	})
	files, err := renderer.RenderSkeleton(g.opts.AutoConfig)
	if err != nil {
		return nil, fmt.Errorf("rendering skeleton: %w", err)
	}

	root := filepath.Join(g.opts.Path, name)
	exists, err := g.checkTarget(root)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Dir:         root,
		Package:     name,
		Dirs:        []string{SourceDir, ModelDir, ArtifactDir},
		Models:      models,
		Overwritten: exists,
		DryRun:      g.opts.DryRun,
	}
	for _, f := range files {
		result.Files = append(result.Files, f.TargetPath)
	}

	g.log.Debug("generating skeleton",
		"path", root,
		"models", len(models),
		"overwrite", exists,
		"dryRun", g.opts.DryRun)

	if g.opts.DryRun {
		return result, nil
	}

	if err := mkdirAll(g.opts.Path); err != nil {
		return nil, err
	}
	for _, dir := range result.Dirs {
		if err := mkdirAll(filepath.Join(root, filepath.FromSlash(dir))); err != nil {
			return nil, err
		}
	}

	for _, f := range files {
		target := filepath.Join(root, filepath.FromSlash(f.TargetPath))
		if err := writeFile(target, f.Content, f.Mode); err != nil {
			return nil, err
		}
		g.log.Debug("wrote file", "path", f.TargetPath)
	}

	for _, m := range models {
		if err := copyFile(m.Source, filepath.Join(root, filepath.FromSlash(m.Dest))); err != nil {
			return nil, err
		}
		g.log.Debug("copied model", "name", m.Name, "from", m.Source)
	}

	return result, nil
}

// checkTarget reports whether root already exists. Without Overwrite an
// existing root is an error. With Overwrite a root that does not resolve to
// a directory is removed; a symlink to a directory is followed.
func (g *Generator) checkTarget(root string) (bool, error) {
	if info, err := os.Stat(g.opts.Path); err == nil && !info.IsDir() {
		return false, oerrors.WriteFailure(g.opts.Path, fmt.Errorf("destination is not a directory"))
	}

	_, err := os.Lstat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, oerrors.WriteFailure(root, err)
	}

	if !g.opts.Overwrite {
		return true, oerrors.NewAlreadyExistsError(
			fmt.Sprintf("%s already exists", root),
			root,
			"Choose a different name or destination, or pass --overwrite to replace the skeleton files.")
	}

	if info, err := os.Stat(root); err == nil && info.IsDir() {
		return true, nil
	}

	if !g.opts.DryRun {
		if err := os.Remove(root); err != nil {
			return true, oerrors.WriteFailure(root, err)
		}
		g.log.Debug("removed non-directory at skeleton root", "path", root)
	}

	return true, nil
}
