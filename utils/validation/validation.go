package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check validates a request struct against its tags and returns per-field
// error text, keyed by lowercased field name. Empty map means valid.
func Check(s interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return errors
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request data!"
		return errors
	}

	for _, e := range validationErrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", e.Field())
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", e.Field(), e.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long!", e.Field(), e.Param())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", e.Field(), e.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", e.Field(), e.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", e.Field())
		}
	}

	return errors
}
