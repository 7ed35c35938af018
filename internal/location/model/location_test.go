package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPointMarshalJSON(t *testing.T) {
	point := GeoPoint{Longitude: 3.3792, Latitude: 6.5244}

	data, err := json.Marshal(point)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"Point","coordinates":[3.3792,6.5244]}`, string(data))
}

func TestGeoPointUnmarshalJSON(t *testing.T) {
	var point GeoPoint
	err := json.Unmarshal([]byte(`{"type":"Point","coordinates":[3.3792,6.5244]}`), &point)
	require.NoError(t, err)

	assert.InDelta(t, 3.3792, point.Longitude, 1e-9)
	assert.InDelta(t, 6.5244, point.Latitude, 1e-9)
}

func TestGeoPointUnmarshalRejectsBadGeometry(t *testing.T) {
	var point GeoPoint

	assert.Error(t, json.Unmarshal([]byte(`{"type":"Polygon","coordinates":[0,0]}`), &point))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"Point","coordinates":[0]}`), &point))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"Point","coordinates":[0,0,0]}`), &point))
}

func TestGeoPointValid(t *testing.T) {
	assert.True(t, GeoPoint{Longitude: 0, Latitude: 0}.Valid())
	assert.True(t, GeoPoint{Longitude: -180, Latitude: 90}.Valid())
	assert.True(t, GeoPoint{Longitude: 180, Latitude: -90}.Valid())

	assert.False(t, GeoPoint{Longitude: 181, Latitude: 0}.Valid())
	assert.False(t, GeoPoint{Longitude: 0, Latitude: -91}.Valid())
}

func TestLocationJSONHidesArchived(t *testing.T) {
	data, err := json.Marshal(Location{Name: "lekki gardens", Archived: true})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "archived")
	assert.Contains(t, string(data), "lekki gardens")
}
