package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	templates, err := NewTemplateSet()
	require.NoError(t, err)

	body, err := templates.RenderWelcome("ada")
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome, ada!")
	assert.Contains(t, body, "Opos Parking")
}

func TestRenderReset(t *testing.T) {
	templates, err := NewTemplateSet()
	require.NoError(t, err)

	body, err := templates.RenderReset("ada", "https://example.com/reset/abc123")
	require.NoError(t, err)

	assert.Contains(t, body, "Hi ada")
	assert.Contains(t, body, `href="https://example.com/reset/abc123"`)
	assert.Contains(t, body, "valid for 10 minutes")
}
