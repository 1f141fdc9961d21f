package outbound

import (
	"context"

	"github.com/gocabs/rideflow/internal/domain/entity"
)

// DriverSource is the external driver data service.
type DriverSource interface {
	Fetch(ctx context.Context) ([]entity.Driver, error)
}
