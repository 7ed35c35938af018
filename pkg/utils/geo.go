package utils

import (
	"strconv"
	"strings"

	appErrors "opos-parking/pkg/errors"
)

// Distances are expressed in miles throughout the geo endpoints.
const (
	EarthRadiusMiles = 3963.2
	MetersToMiles    = 0.000621371192
	EarthRadiusM     = 6371000.0
)

// ParseLatLng splits a "lat,lng" path segment into coordinates.
func ParseLatLng(latlng string) (lat, lng float64, err error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 {
		return 0, 0, appErrors.ErrInvalidLatLng
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, appErrors.ErrInvalidLatLng
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, appErrors.ErrInvalidLatLng
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, appErrors.ErrInvalidLatLng
	}

	return lat, lng, nil
}

// AngularRadius converts a linear distance in miles to the central angle (in
// radians) of the matching spherical cap.
func AngularRadius(distanceMiles float64) float64 {
	return distanceMiles / EarthRadiusMiles
}
