package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "opos-parking/pkg/errors"
)

func TestParseLatLng(t *testing.T) {
	lat, lng, err := ParseLatLng("6.5244,3.3792")
	require.NoError(t, err)
	assert.InDelta(t, 6.5244, lat, 1e-9)
	assert.InDelta(t, 3.3792, lng, 1e-9)

	lat, lng, err = ParseLatLng(" -90 , 180 ")
	require.NoError(t, err)
	assert.InDelta(t, -90, lat, 1e-9)
	assert.InDelta(t, 180, lng, 1e-9)
}

func TestParseLatLngMalformed(t *testing.T) {
	cases := []string{
		"",
		"6.5244",
		"6.5244,3.3792,1",
		"abc,3.3792",
		"6.5244,def",
		"91,0",
		"-91,0",
		"0,181",
		"0,-181",
	}

	for _, input := range cases {
		_, _, err := ParseLatLng(input)
		assert.ErrorIs(t, err, appErrors.ErrInvalidLatLng, "input %q", input)
	}
}

func TestAngularRadius(t *testing.T) {
	assert.InDelta(t, 10.0/3963.2, AngularRadius(10), 1e-12)
	assert.Zero(t, AngularRadius(0))
}
