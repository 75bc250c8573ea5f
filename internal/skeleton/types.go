// Package skeleton generates the directory skeleton of a package that embeds
// Stan model files and wires them to a downstream build step.
package skeleton

import "io/fs"

// Fixed layout of a generated skeleton, relative to its root.
const (
	// ManifestFile is the package metadata manifest.
	ManifestFile = "DESCRIPTION"

	// NamespaceFile declares exported and imported symbols.
	NamespaceFile = "NAMESPACE"

	// NoteFile is the onboarding note listing manual edit steps.
	NoteFile = "Read-and-delete-me"

	// SourceDir holds the top-level documentation/source file.
	SourceDir = "R"

	// ModelDir holds verbatim copies of the supplied model files.
	ModelDir = "inst/stan"

	// ArtifactDir is where the downstream compiler writes build artifacts.
	ArtifactDir = "src"

	// ModelExt is the required extension of model files.
	ModelExt = ".stan"
)

// Options configures skeleton generation.
type Options struct {
	// Name is the package name; the skeleton root is Path/Name.
	Name string

	// Path is the destination directory. Created if missing.
	Path string

	// Models lists model file paths to copy into ModelDir. May be empty.
	Models []string

	// Overwrite replaces the fixed entries of an existing skeleton.
	// Files the user added beside them are left untouched.
	Overwrite bool

	// AutoConfig adds configure scripts that run the downstream
	// configuration step at install time.
	AutoConfig bool

	// DryRun validates everything and returns the plan without writing.
	DryRun bool

	// Descriptor overrides the default manifest fields.
	Descriptor Overrides

	// Templates is the template set to render. Nil means DefaultTemplates().
	Templates fs.FS
}

// Overrides replaces default manifest values. Empty fields keep the default.
type Overrides struct {
	Title       string
	Description string
	Version     string
	Author      string
	Maintainer  string
	License     string
}

// Model is a model file copied into the skeleton.
type Model struct {
	// Name is the base name without extension. The downstream compiler
	// produces one artifact per model keyed by this name.
	Name string `json:"name" yaml:"name"`

	// Source is the caller-supplied path.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Dest is the path of the copy, relative to the skeleton root.
	Dest string `json:"dest" yaml:"dest"`
}

// Result describes a generated skeleton.
type Result struct {
	// Dir is the skeleton root directory.
	Dir string `json:"dir" yaml:"dir"`

	// Package is the package name.
	Package string `json:"package" yaml:"package"`

	// Files lists written files relative to Dir, in write order.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Dirs lists the fixed directories relative to Dir.
	Dirs []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`

	// Models lists the copied model files.
	Models []Model `json:"models,omitempty" yaml:"models,omitempty"`

	// Overwritten is true when an existing skeleton was replaced.
	Overwritten bool `json:"overwritten" yaml:"overwritten"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dryRun" yaml:"dryRun"`
}

// TemplateData is passed to every skeleton template.
type TemplateData struct {
	Descriptor Descriptor
	Models     []Model
}
