package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opos-parking/internal/user/model"
)

func signupRequest() model.SignupRequest {
	return model.SignupRequest{
		Name:            "ada",
		Email:           "ada@example.com",
		Password:        "super-secret-1",
		PasswordConfirm: "super-secret-1",
		Role:            "vendor",
	}
}

func TestValidateSignupRequest(t *testing.T) {
	assert.NoError(t, ValidateStruct(signupRequest()))
}

func TestValidateSignupRequestBadRole(t *testing.T) {
	request := signupRequest()
	request.Role = "admin"
	assert.Error(t, ValidateStruct(request))
}

func TestValidateSignupRequestEmptyRoleAllowed(t *testing.T) {
	request := signupRequest()
	request.Role = ""
	assert.NoError(t, ValidateStruct(request))
}

func TestValidateSignupRequestPasswordMismatch(t *testing.T) {
	request := signupRequest()
	request.PasswordConfirm = "different-secret"
	assert.Error(t, ValidateStruct(request))
}

func TestValidateSignupRequestShortPassword(t *testing.T) {
	request := signupRequest()
	request.Password = "short"
	request.PasswordConfirm = "short"
	assert.Error(t, ValidateStruct(request))
}

func TestValidateSignupRequestBadEmail(t *testing.T) {
	request := signupRequest()
	request.Email = "not-an-email"
	assert.Error(t, ValidateStruct(request))
}
