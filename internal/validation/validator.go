package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator used for every option struct and
// theme document. Besides the built-in tags it understands:
//
//	finite    float is neither NaN nor infinite
//	csscolor  string parses as a CSS colour
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			switch fl.Field().Kind() {
			case reflect.Float32, reflect.Float64:
				f := fl.Field().Float()
				return !math.IsNaN(f) && !math.IsInf(f, 0)
			default:
				return true
			}
		})

		_ = v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			if fl.Field().Kind() != reflect.String {
				return false
			}
			_, err := colormodel.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s with the shared instance and normalises any failure
// into a palerrors.ValidationError.
func Struct(s any) error {
	return Convert(Instance().Struct(s))
}

// Var validates a single value against tag. field names the value in the
// resulting error.
func Var(field string, value any, tag string) error {
	err := Instance().Var(value, tag)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return palerrors.NewValidationError(field, describe(field, ves[0]), err)
	}
	return palerrors.NewValidationError(field, err.Error(), err)
}

// Convert normalizes validator errors into palette validation errors. Only
// the first failing field is reported.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := FieldName(ve)
		return palerrors.NewValidationError(field, describe(field, ve), err)
	}

	return palerrors.NewValidationError("options", err.Error(), err)
}

// FieldName renders the failing field as a dotted, yaml-style path without
// the root struct name, e.g. "controls.min_lightness".
func FieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "csscolor":
		return fmt.Sprintf("%s must be a CSS color, got %v", field, fe.Value())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}
