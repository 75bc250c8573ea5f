package skeleton

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
)

// modelNameRegex matches model base names usable as generated symbol names.
var modelNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const packageNameHint = "Package names contain only ASCII letters, digits and '.', " +
	"have at least two characters, start with a letter and do not end in '.'."

// ValidatePackageName checks that name is a valid package name.
func ValidatePackageName(name string) error {
	if name == "" {
		return oerrors.NewInvalidNameError("package name cannot be empty", "Package", packageNameHint)
	}

	for _, r := range name {
		if !isASCIILetter(r) && !isASCIIDigit(r) && r != '.' {
			return oerrors.NewInvalidNameError(
				fmt.Sprintf("invalid package name %q: contains invalid character %q", name, r),
				"Package", packageNameHint)
		}
	}

	if !isASCIILetter(rune(name[0])) {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("invalid package name %q: must start with a letter", name),
			"Package", packageNameHint)
	}

	if strings.HasSuffix(name, ".") {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("invalid package name %q: must not end with '.'", name),
			"Package", packageNameHint)
	}

	if len(name) < 2 {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("invalid package name %q: must have at least two characters", name),
			"Package", packageNameHint)
	}

	return nil
}

// ValidateModelName checks that a model base name can key a build artifact.
func ValidateModelName(name string) error {
	if !modelNameRegex.MatchString(name) {
		return oerrors.NewInvalidNameError(
			fmt.Sprintf("invalid model name %q: must start with a letter or underscore and contain only letters, digits, and underscores", name),
			"Model",
			"Rename the model file, e.g. my-model.stan -> my_model.stan.")
	}
	return nil
}

// ModelName derives the model identifier from a file path.
func ModelName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ModelExt)
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
