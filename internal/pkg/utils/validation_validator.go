package utils

import (
	"clinix-ehr-bridge/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("urgency_level", validateUrgencyLevel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUrgencyLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.UrgencyLevelCritical,
		constvars.UrgencyLevelUrgent,
		constvars.UrgencyLevelStandard,
		constvars.UrgencyLevelNonUrgent:
		return true
	}
	return false
}
