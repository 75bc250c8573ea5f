package skeleton

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templateFuncs are available to every skeleton template.
var templateFuncs = template.FuncMap{
	"comment": commentLines,
}

// commentLines joins the non-blank lines of s with newline + prefix, so a
// multi-line value stays inside a line comment block.
func commentLines(prefix, s string) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"+prefix)
}

// Renderer renders skeleton templates with typed data.
type Renderer struct {
	templates fs.FS
	data      TemplateData
}

// NewRenderer creates a renderer over the given template set.
func NewRenderer(templates fs.FS, data TemplateData) *Renderer {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Renderer{templates: templates, data: data}
}

// RenderFile renders a single template and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// File is a rendered skeleton file.
type File struct {
	// TargetPath is the output path relative to the skeleton root.
	TargetPath string

	// Content is the rendered content.
	Content []byte

	// Mode is the file permission.
	Mode fs.FileMode
}

// RenderSkeleton renders the manifest and every templated file. Files
// flagged autoConfig are included only when autoConfig is true.
func (r *Renderer) RenderSkeleton(autoConfig bool) ([]File, error) {
	pkg := r.data.Descriptor.Package

	files := []File{{
		TargetPath: ManifestFile,
		Content:    r.data.Descriptor.Marshal(),
		Mode:       0o644,
	}}

	for _, entry := range skeletonFiles {
		if entry.autoConfig && !autoConfig {
			continue
		}

		content, err := fs.ReadFile(r.templates, entry.template)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.template, err)
		}

		rendered, err := r.RenderFile(entry.template, content)
		if err != nil {
			return nil, err
		}

		files = append(files, File{
			TargetPath: entry.target(pkg),
			Content:    rendered,
			Mode:       entry.mode,
		})
	}

	return files, nil
}
