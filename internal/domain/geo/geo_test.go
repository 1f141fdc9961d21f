package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeoPoint(t *testing.T) {
	p, err := NewGeoPoint(37.78, -122.41)

	assert.Nil(t, err)
	assert.Equal(t, 37.78, p.Latitude)
	assert.Equal(t, -122.41, p.Longitude)
}

func TestNewGeoPoint_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lng         float64
		expectedErr error
	}{
		{"Should return error when latitude exceeds 90", 90.01, 0, ErrLatitudeOutOfRange},
		{"Should return error when latitude is below -90", -91, 0, ErrLatitudeOutOfRange},
		{"Should return error when longitude exceeds 180", 0, 180.5, ErrLongitudeOutOfRange},
		{"Should return error when longitude is below -180", 0, -181, ErrLongitudeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeoPoint(tt.lat, tt.lng)

			assert.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestHaversineZero(t *testing.T) {
	p := GeoPoint{Latitude: 37.78, Longitude: -122.41}

	assert.Zero(t, Haversine(p, p))
}

func TestHaversineKnownDistance(t *testing.T) {
	// SF downtown to SF ferry building, roughly 1.2km.
	a := GeoPoint{Latitude: 37.7749, Longitude: -122.4194}
	b := GeoPoint{Latitude: 37.7955, Longitude: -122.3937}

	d := Haversine(a, b)

	assert.Greater(t, d, 2000.0)
	assert.Less(t, d, 4000.0)
}

func TestHaversineSymmetric(t *testing.T) {
	a := GeoPoint{Latitude: 37.78, Longitude: -122.41}
	b := GeoPoint{Latitude: 37.79, Longitude: -122.40}

	assert.Equal(t, Haversine(a, b), Haversine(b, a))
}

func TestMidpoint(t *testing.T) {
	a := GeoPoint{Latitude: 37.78, Longitude: -122.41}
	b := GeoPoint{Latitude: 37.80, Longitude: -122.39}

	m := Midpoint(a, b)

	assert.InDelta(t, 37.79, m.Latitude, 1e-9)
	assert.InDelta(t, -122.40, m.Longitude, 1e-9)
}

func TestFallbackAddress(t *testing.T) {
	p := GeoPoint{Latitude: 37.78, Longitude: -122.41}

	assert.Equal(t, "37.7800, -122.4100", FallbackAddress(p))
}
