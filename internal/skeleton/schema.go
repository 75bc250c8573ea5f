package skeleton

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
)

//go:embed schema.cue
var descriptorSchema []byte

// SchemaValidator validates descriptors against the embedded CUE schema.
type SchemaValidator struct {
	ctx *cue.Context
	def cue.Value
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(descriptorSchema, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling descriptor schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Descriptor"))
	if !def.Exists() {
		return nil, fmt.Errorf("descriptor schema has no #Descriptor definition")
	}

	return &SchemaValidator{ctx: ctx, def: def}, nil
}

// Validate checks d against #Descriptor. A bad package field is reported
// as an invalid name; anything else as a validation error.
func (v *SchemaValidator) Validate(d Descriptor) error {
	value := v.ctx.Encode(d)
	if value.Err() != nil {
		return fmt.Errorf("encoding descriptor: %w", value.Err())
	}

	err := v.def.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return oerrors.NewValidationError(err.Error(), ManifestFile, "", "")
	}

	first := errs[0]
	path := first.Path()
	field := strings.Join(path, ".")
	msg := strings.TrimSpace(cueerrors.Details(first, nil))

	if len(path) > 0 && path[0] == "package" {
		return oerrors.NewInvalidNameError(msg, field, packageNameHint)
	}

	return oerrors.NewValidationError(msg, ManifestFile, field,
		"Check the value passed on the command line or in the config file.")
}
