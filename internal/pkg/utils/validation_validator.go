package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var dayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func init() {
	validate = validator.New()
	validate.RegisterValidation("day_name", validateDayName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDayName(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, day := range dayNames {
		if value == day {
			return true
		}
	}
	return false
}
