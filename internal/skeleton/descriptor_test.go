package skeleton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyString(t *testing.T) {
	assert.Equal(t, "methods", Dependency{Name: "methods"}.String())
	assert.Equal(t, "rstan (>= 2.18.1)", Dependency{Name: "rstan", Min: "2.18.1"}.String())
}

func TestNewDescriptor(t *testing.T) {
	d := NewDescriptor("demo")

	assert.Equal(t, "demo", d.Package)
	assert.Equal(t, "Package", d.Type)
	assert.Equal(t, "The 'demo' Package", d.Title)
	assert.Equal(t, DefaultVersion, d.Version)
	assert.True(t, d.NeedsCompilation)
	assert.Equal(t, "GNU make", d.SystemRequirements)

	names := func(deps []Dependency) []string {
		out := make([]string, 0, len(deps))
		for _, dep := range deps {
			out = append(out, dep.Name)
		}
		return out
	}
	assert.Contains(t, names(d.Imports), "rstan")
	assert.Contains(t, names(d.Imports), "rstantools")
	assert.Contains(t, names(d.LinkingTo), "StanHeaders")
	assert.Contains(t, names(d.LinkingTo), "RcppEigen")
}

func TestWithOverrides(t *testing.T) {
	base := NewDescriptor("demo")
	d := base.WithOverrides(Overrides{Title: "A Title", Author: "Jane Doe"})

	assert.Equal(t, "A Title", d.Title)
	assert.Equal(t, "Jane Doe", d.Author)
	assert.Equal(t, DefaultMaintainer, d.Maintainer, "empty override keeps default")
	assert.Equal(t, DefaultTitle("demo"), base.Title, "receiver is not mutated")
}

func TestMarshal(t *testing.T) {
	out := string(NewDescriptor("demo").Marshal())

	assert.True(t, strings.HasPrefix(out, "Package: demo\n"))
	assert.Contains(t, out, "Type: Package\n")
	assert.Contains(t, out, "Biarch: true\n")
	assert.Contains(t, out, "Depends: \n    R (>= 3.4.0)\n")
	assert.Contains(t, out, "    methods,\n")
	assert.Contains(t, out, "    rstantools (>= 2.4.0)\nLinkingTo: \n")
	assert.Contains(t, out, "NeedsCompilation: yes\n")
}

func TestMarshal_OmitsEmptyLists(t *testing.T) {
	d := NewDescriptor("demo")
	d.LinkingTo = nil

	assert.NotContains(t, string(d.Marshal()), "LinkingTo")
}

func TestParseManifest(t *testing.T) {
	fields, err := ParseManifest(strings.NewReader(string(NewDescriptor("demo").Marshal())))
	require.NoError(t, err)

	assert.Equal(t, "demo", fields["Package"])
	assert.Equal(t, "R (>= 3.4.0)", fields["Depends"])
	assert.True(t, strings.HasPrefix(fields["Imports"], "methods, Rcpp (>= 0.12.0),"))
	assert.Equal(t, "yes", fields["NeedsCompilation"])
}

func TestMarshal_MultiLineValues(t *testing.T) {
	d := NewDescriptor("demo")
	d.Description = "First line.\nSecond: line\r\n\n  Third line.  "

	out := string(d.Marshal())
	assert.Contains(t, out, "Description: First line.\n    Second: line\n    Third line.\nLicense:")

	fields, err := ParseManifest(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "First line. Second: line Third line.", fields["Description"])
	assert.Equal(t, DefaultLicense, fields["License"])
	assert.NotContains(t, fields, "Second")
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"continuation first", "    stray\nPackage: demo\n"},
		{"missing colon", "Package demo\n"},
		{"empty key", ": demo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
