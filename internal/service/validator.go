package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateStruct runs struct tags and reports every failing field in one
// entity.ValidationError with the given message.
func validateStruct(v any, message string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}

	return entity.NewValidationError(message, fields...)
}

// missingFields returns the fields failing presence checks only.
func missingFields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	var fields []string

	for _, fe := range ve {
		switch fe.Tag() {
		case "required", "required_if", "notblank":
			fields = append(fields, fe.Field())
		}
	}

	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
