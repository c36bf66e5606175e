package validator

import (
	"github.com/go-playground/validator/v10"

	"drp/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("owner_kind", validateOwnerKind)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateOwnerKind(fl validator.FieldLevel) bool {
	return domain.OwnerKind(fl.Field().String()).Valid()
}
