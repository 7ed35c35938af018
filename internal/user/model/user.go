package model

import (
	"time"

	"github.com/google/uuid"

	"opos-parking/pkg/utils"
)

type Role string

const (
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
	// RoleOdogwu is the administrator-equivalent role.
	RoleOdogwu Role = "odogwu"
)

// passwordChangedSkew is subtracted from the change timestamp so a session
// token issued in the same instant as the change is not spuriously rejected.
const passwordChangedSkew = 2 * time.Second

type User struct {
	ID                   uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name                 string     `json:"name" gorm:"size:60;not null"`
	Email                string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHashed       string     `json:"-" gorm:"not null;default:''"`
	PasswordChangedAt    *time.Time `json:"-"`
	PasswordResetToken   *string    `json:"-" gorm:"size:64;index"`
	PasswordResetExpires *time.Time `json:"-"`
	Role                 Role       `json:"role" gorm:"size:20;not null;default:customer"`
	IsGoogle             bool       `json:"is_google" gorm:"not null;default:false"`
	IsDeleted            bool       `json:"-" gorm:"not null;default:false;index"`
	Admin                bool       `json:"-" gorm:"not null;default:false"`
	ImageURL             string     `json:"image_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch Role(role) {
	case RoleVendor, RoleCustomer, RoleOdogwu:
		return true
	}
	return false
}

// SetPassword hashes and stores a new plaintext password.
func (u *User) SetPassword(plain string) error {
	hashed, err := utils.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHashed = hashed
	return nil
}

func (u *User) CorrectPassword(candidate string) bool {
	return utils.CheckPassword(u.PasswordHashed, candidate)
}

// MarkPasswordChanged records the change time minus a small clock-skew
// buffer. Not called on initial account creation.
func (u *User) MarkPasswordChanged() {
	changedAt := time.Now().Add(-passwordChangedSkew)
	u.PasswordChangedAt = &changedAt
}

// ChangedPasswordAfter reports whether the password was changed after a token
// with the given issued-at (unix seconds) was signed. A user that never
// changed their password always passes.
func (u *User) ChangedPasswordAfter(issuedAt int64) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return issuedAt < u.PasswordChangedAt.Unix()
}

// CreatePasswordResetToken generates a random reset token, stores its SHA-256
// hash and a 10-minute expiry on the user, and returns the raw token. Only
// the raw token is ever emailed.
func (u *User) CreatePasswordResetToken() (string, error) {
	raw, err := utils.GenerateResetToken()
	if err != nil {
		return "", err
	}

	hashed := utils.HashResetToken(raw)
	expires := time.Now().Add(10 * time.Minute)

	u.PasswordResetToken = &hashed
	u.PasswordResetExpires = &expires

	return raw, nil
}

func (u *User) ClearPasswordResetToken() {
	u.PasswordResetToken = nil
	u.PasswordResetExpires = nil
}
