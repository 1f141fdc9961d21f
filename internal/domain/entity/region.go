package entity

import (
	"math"

	"github.com/gocabs/rideflow/internal/domain/geo"
)

// Region describes a map viewport: a center plus latitude/longitude spans.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

const (
	// Home viewport used before any location is known, so the map never
	// renders with undefined bounds.
	defaultLatitude  = 37.78825
	defaultLongitude = -122.4324

	// singlePointDelta is the close-in span used to frame a lone point.
	singlePointDelta = 0.01

	// minDelta is the usability floor: the viewport never zooms in tighter
	// than this, and coincident points never produce a zero-area region.
	minDelta = 0.01

	// paddingFactor widens the bounding span so both endpoints sit inside
	// the viewport rather than on its edge.
	paddingFactor = 1.3
)

// DefaultRegion returns the fixed fallback viewport.
func DefaultRegion() Region {
	return Region{
		Latitude:       defaultLatitude,
		Longitude:      defaultLongitude,
		LatitudeDelta:  singlePointDelta,
		LongitudeDelta: singlePointDelta,
	}
}

// ComputeRegion derives the viewport framing the user and destination points.
// Pure and deterministic: nil/nil falls back to DefaultRegion, a single known
// point is framed close-in, and two points are framed by their padded
// bounding span centered on the midpoint.
func ComputeRegion(user, destination *geo.GeoPoint) Region {
	switch {
	case user == nil && destination == nil:
		return DefaultRegion()
	case destination == nil:
		return singlePointRegion(*user)
	case user == nil:
		return singlePointRegion(*destination)
	}

	center := geo.Midpoint(*user, *destination)
	span := math.Max(
		math.Abs(destination.Latitude-user.Latitude),
		math.Abs(destination.Longitude-user.Longitude),
	) * paddingFactor
	if span < minDelta {
		span = minDelta
	}

	return Region{
		Latitude:       center.Latitude,
		Longitude:      center.Longitude,
		LatitudeDelta:  span,
		LongitudeDelta: span,
	}
}

// Contains reports whether the point lies inside the region's bounds.
func (r Region) Contains(p geo.GeoPoint) bool {
	return math.Abs(p.Latitude-r.Latitude) <= r.LatitudeDelta/2 &&
		math.Abs(p.Longitude-r.Longitude) <= r.LongitudeDelta/2
}

func singlePointRegion(p geo.GeoPoint) Region {
	return Region{
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		LatitudeDelta:  singlePointDelta,
		LongitudeDelta: singlePointDelta,
	}
}
