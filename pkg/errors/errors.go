package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials      = errors.New("incorrect email or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("you are not logged in, please log in to continue")
	ErrInsufficientPermissions = errors.New("you do not have permission to perform this action")
	ErrPasswordChanged         = errors.New("user recently changed password, please log in again")
	ErrTokenUserGone           = errors.New("the user belonging to this token no longer exists")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUserRole   = errors.New("invalid user role")

	ErrInvalidInput    = errors.New("invalid input data")
	ErrInvalidLatLng   = errors.New("please provide latitude and longitude in the format lat,lng")
	ErrPasswordRoute   = errors.New("please use the appropriate route to update password")
	ErrGoogleLoginFail = errors.New("google login failed, please try again")
	ErrResetToken      = errors.New("token is invalid or has expired, please try again")
	ErrEmailSendFailed = errors.New("there was an error sending the email, try again later")

	ErrLocationNotFound = errors.New("this location does not exist")
	ErrZoneNotFound     = errors.New("this zone does not exist")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
