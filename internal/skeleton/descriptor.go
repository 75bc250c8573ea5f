package skeleton

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Default manifest values. Users are expected to edit them after generation.
const (
	DefaultVersion     = "0.0.0.9000"
	DefaultDescription = "More about what it does (maybe more than one line)."
	DefaultAuthor      = "Who wrote it"
	DefaultMaintainer  = "Who to complain to <yourfault@somewhere.net>"
	DefaultLicense     = "GPL (>= 3)"
)

// Dependency is a package dependency with an optional minimum version.
type Dependency struct {
	Name string `json:"name"`
	Min  string `json:"min,omitempty"`
}

// String renders the dependency as "Name (>= Min)".
func (d Dependency) String() string {
	if d.Min == "" {
		return d.Name
	}
	return fmt.Sprintf("%s (>= %s)", d.Name, d.Min)
}

// Descriptor is the package metadata manifest. It is built once at
// generation time and never mutated after it is written.
type Descriptor struct {
	Package            string       `json:"package"`
	Type               string       `json:"type"`
	Title              string       `json:"title"`
	Version            string       `json:"version"`
	Author             string       `json:"author"`
	Maintainer         string       `json:"maintainer"`
	Description        string       `json:"description"`
	License            string       `json:"license"`
	Encoding           string       `json:"encoding"`
	Biarch             bool         `json:"biarch"`
	Depends            []Dependency `json:"depends,omitempty"`
	Imports            []Dependency `json:"imports,omitempty"`
	LinkingTo          []Dependency `json:"linkingTo,omitempty"`
	SystemRequirements string       `json:"systemRequirements"`
	NeedsCompilation   bool         `json:"needsCompilation"`
}

// DefaultTitle returns the placeholder title for a package named name.
func DefaultTitle(name string) string {
	return fmt.Sprintf("The '%s' Package", name)
}

// NewDescriptor returns the standard descriptor for a package named name.
func NewDescriptor(name string) Descriptor {
	return Descriptor{
		Package:     name,
		Type:        "Package",
		Title:       DefaultTitle(name),
		Version:     DefaultVersion,
		Author:      DefaultAuthor,
		Maintainer:  DefaultMaintainer,
		Description: DefaultDescription,
		License:     DefaultLicense,
		Encoding:    "UTF-8",
		Biarch:      true,
		Depends: []Dependency{
			{Name: "R", Min: "3.4.0"},
		},
		Imports: []Dependency{
			{Name: "methods"},
			{Name: "Rcpp", Min: "0.12.0"},
			{Name: "RcppParallel", Min: "5.0.1"},
			{Name: "rstan", Min: "2.18.1"},
			{Name: "rstantools", Min: "2.4.0"},
		},
		LinkingTo: []Dependency{
			{Name: "BH", Min: "1.66.0"},
			{Name: "Rcpp", Min: "0.12.0"},
			{Name: "RcppEigen", Min: "0.3.3.3.0"},
			{Name: "RcppParallel", Min: "5.0.1"},
			{Name: "StanHeaders", Min: "2.18.0"},
			{Name: "rstan", Min: "2.18.1"},
		},
		SystemRequirements: "GNU make",
		NeedsCompilation:   true,
	}
}

// WithOverrides returns a copy of d with the non-empty override fields applied.
func (d Descriptor) WithOverrides(o Overrides) Descriptor {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&d.Title, o.Title)
	set(&d.Description, o.Description)
	set(&d.Version, o.Version)
	set(&d.Author, o.Author)
	set(&d.Maintainer, o.Maintainer)
	set(&d.License, o.License)
	return d
}

// Marshal encodes the descriptor as a manifest: one "Key: value" field per
// line, list fields split over indented continuation lines.
func (d Descriptor) Marshal() []byte {
	var buf bytes.Buffer

	// Multi-line values continue on indented lines; blank lines would
	// end the record, so they are dropped.
	field := func(key, value string) {
		lines := strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
		fmt.Fprintf(&buf, "%s: %s\n", key, strings.TrimSpace(lines[0]))
		for _, line := range lines[1:] {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(&buf, "    %s\n", line)
			}
		}
	}
	list := func(key string, deps []Dependency) {
		if len(deps) == 0 {
			return
		}
		fmt.Fprintf(&buf, "%s: \n", key)
		for i, dep := range deps {
			sep := ","
			if i == len(deps)-1 {
				sep = ""
			}
			fmt.Fprintf(&buf, "    %s%s\n", dep, sep)
		}
	}

	field("Package", d.Package)
	field("Type", d.Type)
	field("Title", d.Title)
	field("Version", d.Version)
	field("Author", d.Author)
	field("Maintainer", d.Maintainer)
	field("Description", d.Description)
	field("License", d.License)
	field("Encoding", d.Encoding)
	field("LazyData", "true")
	field("Biarch", yesNo(d.Biarch, "true", "false"))
	list("Depends", d.Depends)
	list("Imports", d.Imports)
	list("LinkingTo", d.LinkingTo)
	field("SystemRequirements", d.SystemRequirements)
	field("NeedsCompilation", yesNo(d.NeedsCompilation, "yes", "no"))

	return buf.Bytes()
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// ParseManifest reads manifest fields. Continuation lines are joined to
// the preceding field with a single space.
func ParseManifest(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string)
	var last string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if last == "" {
				return nil, fmt.Errorf("line %d: continuation without a field", lineNo)
			}
			fields[last] = strings.TrimSpace(fields[last] + " " + strings.TrimSpace(line))
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected \"Key: value\"", lineNo)
		}
		last = key
		fields[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return fields, nil
}
