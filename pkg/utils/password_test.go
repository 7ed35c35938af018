package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NotEqual(t, "correct-horse-battery", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2"))

	assert.True(t, CheckPassword(hashed, "correct-horse-battery"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
	assert.False(t, CheckPassword("", "correct-horse-battery"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("12345678"))
}
