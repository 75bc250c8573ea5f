package skeleton

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultTemplates returns the embedded template set.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// templates/ is compiled in; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// fileSpec describes one templated file of the skeleton.
type fileSpec struct {
	// template is the file name inside the template set.
	template string

	// target returns the output path relative to the skeleton root.
	target func(pkg string) string

	// mode is the file permission.
	mode fs.FileMode

	// autoConfig marks files written only with Options.AutoConfig.
	autoConfig bool
}

func fixed(p string) func(string) string {
	return func(string) string { return p }
}

// skeletonFiles lists the templated files in write order. The manifest is
// not templated; it is encoded from the Descriptor.
var skeletonFiles = []fileSpec{
	{template: "NAMESPACE.tmpl", target: fixed(NamespaceFile), mode: 0o644},
	{template: "package.R.tmpl", target: PackageSourceFile, mode: 0o644},
	{template: "Read-and-delete-me.tmpl", target: fixed(NoteFile), mode: 0o644},
	{template: "configure.tmpl", target: fixed("configure"), mode: 0o755, autoConfig: true},
	{template: "configure.win.tmpl", target: fixed("configure.win"), mode: 0o755, autoConfig: true},
}

// PackageSourceFile returns the top-level documentation/source file path.
func PackageSourceFile(pkg string) string {
	return path.Join(SourceDir, pkg+"-package.R")
}

// RequiredEntries returns the entries every skeleton contains, regardless
// of how many models were supplied. Directories carry a trailing slash.
func RequiredEntries(pkg string) []string {
	return []string{
		ManifestFile,
		NamespaceFile,
		NoteFile,
		SourceDir + "/",
		PackageSourceFile(pkg),
		"inst/",
		ModelDir + "/",
		ArtifactDir + "/",
	}
}

// Describe returns a short description of a skeleton entry for display.
func Describe(rel string) string {
	rel = path.Clean(strings.TrimSuffix(rel, "/"))

	switch {
	case rel == ManifestFile:
		return "Package metadata"
	case rel == NamespaceFile:
		return "Namespace declarations"
	case rel == NoteFile:
		return "Manual next steps"
	case rel == "configure" || rel == "configure.win":
		return "Install-time model config"
	case rel == ModelDir:
		return "Stan model sources"
	case rel == ArtifactDir:
		return "Generated build artifacts"
	case strings.HasPrefix(rel, SourceDir+"/") && strings.HasSuffix(rel, "-package.R"):
		return "Package documentation"
	case strings.HasPrefix(rel, ModelDir+"/") && strings.HasSuffix(rel, ModelExt):
		return "Stan model"
	default:
		return ""
	}
}
