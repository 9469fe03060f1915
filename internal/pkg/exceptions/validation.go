package exceptions

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"lapswim-service/internal/pkg/constvars"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	first := validationErrors[0]
	fieldName := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return fieldName + " is required"
	case "datetime":
		return fieldName + " has an invalid format"
	case "day_name":
		return fieldName + " must be a day of the week"
	default:
		return fieldName + " is invalid"
	}
}
