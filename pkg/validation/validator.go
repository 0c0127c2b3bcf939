package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Violation describes a single struct field that failed its validate tag.
type Violation struct {
	Field string // Struct field name
	Tag   string // Failed tag (e.g. "gte", "ltefield")
	Param string // Tag parameter (e.g. "0", "F")
	Value any    // Offending value
}

// Struct validates v against its `validate` struct tags.
// The returned error, if any, can be decomposed with Violations.
func Struct(v any) error {
	if v == nil {
		return errors.New("value to validate cannot be nil")
	}
	return validate.Struct(v)
}

// Violations extracts per-field violations from an error returned by Struct.
// It returns nil if err does not carry field-level detail.
func Violations(err error) []Violation {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]Violation, 0, len(validationErrs))
	for _, e := range validationErrs {
		out = append(out, Violation{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
			Value: e.Value(),
		})
	}
	return out
}

// Describe renders a violated tag as a readable constraint, e.g. ">= 0".
func (v Violation) Describe() string {
	switch v.Tag {
	case "required":
		return "set"
	case "gte", "min":
		return ">= " + v.Param
	case "lte", "max":
		return "<= " + v.Param
	case "gt":
		return "> " + v.Param
	case "lt":
		return "< " + v.Param
	case "ltefield":
		return "<= " + v.Param
	case "gtefield":
		return ">= " + v.Param
	case "oneof":
		return "one of [" + v.Param + "]"
	default:
		return fmt.Sprintf("valid (%s)", v.Tag)
	}
}
