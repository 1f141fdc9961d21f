package geo

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
)

// GeoPoint is an immutable latitude/longitude pair in decimal degrees (WGS 84).
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, ErrLongitudeOutOfRange
	}
	return GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// NamedLocation pairs a point with a human-readable label. The address may be
// a coordinate-derived fallback when reverse geocoding is unavailable.
type NamedLocation struct {
	Point   GeoPoint
	Address string
}

const earthRadiusM = 6371000.0

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b GeoPoint) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// Midpoint returns the arithmetic midpoint of two points. Fine for the city
// scale viewports this package frames; not a geodesic midpoint.
func Midpoint(a, b GeoPoint) GeoPoint {
	return GeoPoint{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

// FallbackAddress formats a point as a short coordinate label, used when
// reverse geocoding fails so location resolution is never blocked.
func FallbackAddress(p GeoPoint) string {
	return fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
