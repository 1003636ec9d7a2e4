package validator

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrMinItems  = "must contain at least %s item(s)"
	ErrMaxItems  = "must contain at most %s item(s)"
	ErrUnique    = "must not contain duplicate values"
	ErrRowLabel  = "must be 1 to 10 letters or digits"
	ErrInvalid   = "is invalid"
)

var rowLabelRgx = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("row_label", validateRowLabel)

	return validator
}

func validateRowLabel(fl validator.FieldLevel) bool {
	return rowLabelRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMinLength, err.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf(ErrMinItems, err.Param())
		default:
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
	case "max":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMaxLength, err.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf(ErrMaxItems, err.Param())
		default:
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
	case "unique":
		return ErrUnique
	case "row_label":
		return ErrRowLabel
	default:
		return ErrInvalid
	}
}
