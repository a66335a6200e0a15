package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned by Validate and rendered as HTTP 422.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field error located in the request body.
func NewValidationError(field, msg, typ string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Loc: []string{"body", field}, Msg: msg, Type: typ}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if o, ok := field.Interface().(interface{ validationValue() any }); ok {
			return o.validationValue()
		}
		return nil
	},
		Optional[string]{},
		Optional[int]{},
		Optional[float64]{},
		Optional[Gender]{},
	)

	return v
}

// Validate checks the struct tags of a request body. It returns a
// *ValidationError for invalid input.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  message(fe),
			Type: "value_error." + fe.Tag(),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "max":
		if isText(fe.Kind()) {
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "min":
		if isText(fe.Kind()) {
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("value is not a valid enumeration member; permitted: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func isText(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Slice || k == reflect.Array
}
