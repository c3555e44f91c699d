package validator

import (
	"github.com/go-playground/validator/v10"
)

// One schema, two consumers. The `validate` tags carry what the server
// enforces (presence of the six fields); the `formrule` tags carry the
// format checks the submission form applies on top (10-digit contact,
// email shape). The server deliberately does not run formrule.

var (
	required *validator.Validate
	form     *validator.Validate
)

func init() {
	required = validator.New()

	form = validator.New()
	form.SetTagName("formrule")
}

// Required validates the server-enforced rules. Returns field->tag for each
// violation, nil when the value passes.
func Required(v interface{}) map[string]string {
	return collect(required.Struct(v))
}

// Form validates the full schema: required-ness plus format rules. Used by
// the gallery's submission path before anything is sent over the wire.
func Form(v interface{}) map[string]string {
	errs := collect(required.Struct(v))
	if errs == nil {
		errs = make(map[string]string)
	}
	for field, tag := range collect(form.Struct(v)) {
		if _, ok := errs[field]; !ok {
			errs[field] = tag
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func collect(err error) map[string]string {
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
