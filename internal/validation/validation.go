// Package validation wraps go-playground/validator so every entity input is
// checked the same way: tag violations come back as a single domain
// ValidationError carrying a field→reason map, never a raw library error.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

var phonePattern = regexp.MustCompile(`^[0-9+()\-\s]{7,}$`)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails for blank tags or nil funcs.
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		})
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	})

	return validate
}

// Struct validates payload and reports every tag violation in one
// ValidationError labeled with the entity name.
func Struct(label string, payload any) error {
	err := instance().Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrapf(err, "validate %s payload", label)
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe)] = reason(fe)
	}

	return domainerrors.NewValidationError(
		fmt.Sprintf("%s payload failed validation.", label),
		details,
	)
}

// IsISODate reports whether value is an RFC 3339 timestamp or a plain
// YYYY-MM-DD calendar date.
func IsISODate(value string) bool {
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", value)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// fieldPath strips the top-level struct name from the namespace so nested
// violations read like "items[0].qty" rather than "CreatePartsOrderInput.items[0].qty".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "isodate":
		return "must be a valid ISO date string"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters or elements"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be " + fe.Param() + " or greater"
	case "lte":
		return "must be " + fe.Param() + " or less"
	default:
		return "is invalid"
	}
}
