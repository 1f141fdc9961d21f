package outbound

import (
	"context"

	"github.com/gocabs/rideflow/internal/domain/geo"
)

// Place is one candidate returned by the place-search service.
type Place struct {
	Point   geo.GeoPoint
	Name    string
	Country string
	Address string
}

// PlaceSearch is the external geocoding surface: free-text forward search and
// point-to-address reverse lookup.
type PlaceSearch interface {
	Search(ctx context.Context, text string, limit int) ([]Place, error)
	Reverse(ctx context.Context, p geo.GeoPoint) (string, error)
}
