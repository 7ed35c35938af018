package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opos-parking/internal/config"
	"opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
)

// validationService has no repository, mailer or verifier: the flows under
// test must reject bad input before any of them is touched.
func validationService() *UserService {
	return NewService(nil, &config.Config{}, nil, nil)
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	_, err := validationService().Signup(context.Background(), &model.SignupRequest{
		Name:            "ada",
		Email:           "ada@example.com",
		Password:        "super-secret-1",
		PasswordConfirm: "super-secret-1",
		Role:            "admin",
	})

	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	_, err := validationService().Signup(context.Background(), &model.SignupRequest{
		Name:            "ada",
		Email:           "ada@example.com",
		Password:        "short",
		PasswordConfirm: "short",
	})

	requireValidationError(t, err)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	_, err := validationService().Login(context.Background(), &model.LoginRequest{
		Email: "ada@example.com",
	})

	requireValidationError(t, err)
}

func TestResetPasswordRejectsMismatchedConfirm(t *testing.T) {
	_, err := validationService().ResetPassword(context.Background(), "raw-token", &model.ResetPasswordRequest{
		Password:        "super-secret-1",
		PasswordConfirm: "different-secret",
	})

	requireValidationError(t, err)
}

func TestUpdatePasswordRejectsShortPassword(t *testing.T) {
	_, err := validationService().UpdatePassword(context.Background(), uuid.New(), &model.UpdatePasswordRequest{
		PasswordCurrent: "old-secret-1",
		Password:        "short",
		PasswordConfirm: "short",
	})

	requireValidationError(t, err)
}
