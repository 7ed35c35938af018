package validator

import (
	"github.com/go-playground/validator/v10"

	"opos-parking/internal/user/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("user_role", validateUserRole)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return model.ValidRole(fl.Field().String())
}
