// internal/utils/validator.go
package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aryals/dealer-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("vehicle_status", validateVehicleStatus)
	validate.RegisterValidation("banner_route", validateBannerRoute)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateVehicleStatus(fl validator.FieldLevel) bool {
	_, err := models.NormalizeVehicleStatus(fl.Field().String())
	return err == nil
}

func validateBannerRoute(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "home", "about", "finance", "contact":
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be " + e.Param() + " or greater"
	case "vehicle_status":
		return "Status must be one of: Available, Used, Sold Out, Reserved"
	case "banner_route":
		return "Route must be one of: home, about, finance, contact"
	default:
		return e.Field() + " is invalid"
	}
}
