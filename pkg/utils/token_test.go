package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	second, err := GenerateResetToken()
	require.NoError(t, err)

	// 32 random bytes hex-encoded.
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestHashResetToken(t *testing.T) {
	raw, err := GenerateResetToken()
	require.NoError(t, err)

	hashed := HashResetToken(raw)

	assert.Len(t, hashed, 64)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, hashed, HashResetToken(raw))
	assert.NotEqual(t, hashed, HashResetToken(raw+"x"))
}
