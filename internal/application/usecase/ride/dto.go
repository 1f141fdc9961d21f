package ride

import "github.com/gocabs/rideflow/internal/domain/entity"

// Input

type RefreshInput struct {
	SessionID string `json:"session_id"`
}

type EnrichInput struct {
	SessionID string `json:"session_id"`
}

type BookInput struct {
	SessionID string `json:"session_id"`
}

// Output

type RefreshOutput struct {
	Markers []entity.MarkerData `json:"markers"`
	Region  entity.Region       `json:"region"`
}

type BookOutput struct {
	RideID             string `json:"ride_id"`
	DriverID           int    `json:"driver_id"`
	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`
	FarePrice          string `json:"fare_price"`
}
