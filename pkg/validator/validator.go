package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"drp/pkg/e"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

// ValidateStruct reports field errors wrapped in e.ErrInvalidInput.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, err.Error())
	}
	return nil
}
