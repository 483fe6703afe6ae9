package client

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their wire names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})
}

// validateRequest checks request before anything is sent. A nil request is
// rejected when required is set, and treated as empty otherwise.
func validateRequest[T any](operation string, request *T, required bool) error {
	if request == nil {
		if required {
			return &identifier.ValidationError{Operation: operation}
		}

		return nil
	}

	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field())
		}

		return &identifier.ValidationError{Operation: operation, Fields: fields}
	}

	return fmt.Errorf("validating %s request: %w", operation, err)
}
