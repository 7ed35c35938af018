package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opos-parking/pkg/utils"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("vendor"))
	assert.True(t, ValidRole("customer"))
	assert.True(t, ValidRole("odogwu"))

	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("Vendor"))
}

func TestSetAndCorrectPassword(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("super-secret-1"))

	assert.NotEqual(t, "super-secret-1", user.PasswordHashed)
	assert.True(t, user.CorrectPassword("super-secret-1"))
	assert.False(t, user.CorrectPassword("super-secret-2"))
}

func TestChangedPasswordAfter(t *testing.T) {
	user := &User{}

	// Never changed: any token stays valid.
	assert.False(t, user.ChangedPasswordAfter(time.Now().Unix()))

	changedAt := time.Now()
	user.PasswordChangedAt = &changedAt

	before := changedAt.Add(-time.Minute).Unix()
	after := changedAt.Add(time.Minute).Unix()

	assert.True(t, user.ChangedPasswordAfter(before))
	assert.False(t, user.ChangedPasswordAfter(after))
}

func TestMarkPasswordChangedSkew(t *testing.T) {
	user := &User{}
	user.MarkPasswordChanged()

	require.NotNil(t, user.PasswordChangedAt)
	// The recorded time sits slightly in the past so a token issued in the
	// same instant is still accepted.
	assert.False(t, user.ChangedPasswordAfter(time.Now().Unix()))
	assert.True(t, user.PasswordChangedAt.Before(time.Now()))
}

func TestCreatePasswordResetToken(t *testing.T) {
	user := &User{}

	raw, err := user.CreatePasswordResetToken()
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	require.NotNil(t, user.PasswordResetToken)
	require.NotNil(t, user.PasswordResetExpires)

	// The store only ever sees the hash.
	assert.NotEqual(t, raw, *user.PasswordResetToken)
	assert.Equal(t, utils.HashResetToken(raw), *user.PasswordResetToken)

	expiry := time.Until(*user.PasswordResetExpires)
	assert.Greater(t, expiry, 9*time.Minute)
	assert.LessOrEqual(t, expiry, 10*time.Minute)
}

// Credentials and internal flags must never appear in serialized output, no
// matter how the user reaches a response body.
func TestUserJSONNeverExposesCredentials(t *testing.T) {
	changedAt := time.Now()
	resetToken := "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	resetExpires := time.Now().Add(10 * time.Minute)

	user := &User{
		ID:                   uuid.New(),
		Name:                 "ada",
		Email:                "ada@example.com",
		PasswordHashed:       "$2a$12$fakedhashfakedhashfakedhashfakedhashfakedhash",
		PasswordChangedAt:    &changedAt,
		PasswordResetToken:   &resetToken,
		PasswordResetExpires: &resetExpires,
		Role:                 RoleVendor,
		IsDeleted:            true,
		Admin:                true,
	}

	for name, value := range map[string]interface{}{
		"entity":   user,
		"response": user.ToResponse(),
	} {
		data, err := json.Marshal(value)
		require.NoError(t, err)

		body := string(data)
		assert.NotContains(t, body, "password", "%s leaks a password field", name)
		assert.NotContains(t, body, "Password", "%s leaks a password field", name)
		assert.NotContains(t, body, user.PasswordHashed, "%s leaks the hash", name)
		assert.NotContains(t, body, resetToken, "%s leaks the reset token", name)
		assert.NotContains(t, body, "is_deleted", "%s leaks the deletion flag", name)
		assert.NotContains(t, body, "admin", "%s leaks the admin flag", name)
		assert.Contains(t, body, "ada@example.com")
	}
}

func TestClearPasswordResetToken(t *testing.T) {
	user := &User{}
	_, err := user.CreatePasswordResetToken()
	require.NoError(t, err)

	user.ClearPasswordResetToken()

	assert.Nil(t, user.PasswordResetToken)
	assert.Nil(t, user.PasswordResetExpires)
}
