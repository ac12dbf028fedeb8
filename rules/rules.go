// Package rules builds formz validators from go-playground/validator tag
// rules, the same tags used on struct fields (`required`, `min=3`, `email`).
//
// Rules mirror the shape of the form values: a string is a tag rule for a
// scalar field, a nested map holds the rules of a composite field.
//
//	validate := rules.New(map[string]any{
//	    "name":  "required,min=2",
//	    "email": "required,email",
//	    "address": map[string]any{
//	        "city": "required",
//	    },
//	})
//	form.Validator(validate)
//
// Each finding is the failing tag, e.g. "required".
package rules

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/zoobzio/formz"
)

// New returns a validator that checks keyed composites against rules.
// Values of any other shape produce no findings.
func New(rules map[string]any) formz.Validator[string] {
	return With(validator.New(), rules)
}

// With is New with a caller-configured validator instance, for custom tags
// or aliases.
func With(v *validator.Validate, rules map[string]any) formz.Validator[string] {
	return func(values any) formz.Issues[string] {
		data, ok := values.(map[string]any)
		if !ok {
			return nil
		}
		return convert(v.ValidateMap(data, rules))
	}
}

// convert turns ValidateMap output, a map of errors and nested maps, into
// findings.
func convert(raw map[string]any) formz.Issues[string] {
	if len(raw) == 0 {
		return nil
	}
	out := make(formz.Issues[string], len(raw))
	for field, found := range raw {
		switch f := found.(type) {
		case map[string]any:
			if nested := convert(f); nested.Any() {
				out[field] = formz.Nest(nested)
			}
		case error:
			out[field] = formz.Leaf(Tag(f))
		}
	}
	return out
}

// Tag returns the first failing tag of a validator error, or the error
// text when it carries none.
func Tag(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return fields[0].Tag()
	}
	return err.Error()
}
