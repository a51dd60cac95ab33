// Package validation validates request payloads with go-playground/validator
// and reports failures as serrors.ErrBadRequest.
//
// Field names in messages are taken from json tags, so clients see the names
// they sent. Besides the built-in tags, "municipality" accepts the
// municipalities of Catanduanes in any letter case.
package validation

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Get returns the shared validator instance.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}

			return name
		})
		_ = validate.RegisterValidation("municipality", func(fl validator.FieldLevel) bool {
			_, ok := domain.CanonicalMunicipality(fl.Field().String())

			return ok
		})
	})

	return validate
}

// Struct validates s. The returned error is a serrors.ErrBadRequest whose
// message lists every failing field.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("could not validate: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, translate(fe))
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", strings.Join(messages, "; "))
}

func translate(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "uuid", "uuid4":
		return field + " must be a valid id"
	case "latitude", "longitude":
		return field + " must be a valid " + fe.Tag()
	case "municipality":
		return field + " must be a municipality of Catanduanes"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte", "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}

		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lte", "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}

		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
