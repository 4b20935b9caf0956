package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate(req).
type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = describeFieldError(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describeFieldError renders one validation failure as a client-facing
// message keyed on the failed tag.
func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "datetime":
		return fmt.Sprintf("%s must match format %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
