// Package validator wraps go-playground/validator with the project's custom rules.
// It also satisfies echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "studymind/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// usernamePattern: 3 to 50 letters, digits, '_', '.' or '-'.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,50}$`)

// Validator validates structs against their `validate` tags.
type Validator struct {
	validate *playground.Validate
}

// New builds a Validator that reports fields by their json names.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("username", func(fl playground.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate returns domainerrors.ErrValidationFailed with one detail per offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fe.Field()+": "+describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "username":
		return "must be 3-50 characters of letters, digits, '_', '.' or '-'"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
