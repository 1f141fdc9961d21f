package outbound

import (
	"context"
	"time"
)

// RideRecord is one booked ride in the rider's history.
type RideRecord struct {
	ID                 string
	UserID             string
	DriverID           int
	OriginAddress      string
	DestinationAddress string
	OriginLatitude     float64
	OriginLongitude    float64
	DestLatitude       float64
	DestLongitude      float64
	FarePrice          string
	BookedAt           time.Time
}

type RideHistoryRepository interface {
	Save(ctx context.Context, r RideRecord) error
	RecentByUser(ctx context.Context, userID string, limit int) ([]RideRecord, error)
}
