package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/pkg/logger"
	"github.com/gocabs/rideflow/pkg/metrics"
)

// BookingProjector turns rides.booked events into ride-history rows. The row
// insert and the rider's ride counter bump commit in one transaction.
type BookingProjector struct {
	UoW     outbound.UnitOfWork
	Metrics metrics.Metrics
	Logger  logger.Logger
}

func NewBookingProjector(uow outbound.UnitOfWork, m metrics.Metrics, log logger.Logger) *BookingProjector {
	return &BookingProjector{UoW: uow, Metrics: m, Logger: log}
}

func (p *BookingProjector) Handle(ctx context.Context, msg []byte, headers map[string]interface{}) error {
	var ride outbound.RideRecord
	if err := json.Unmarshal(msg, &ride); err != nil {
		p.Metrics.IncBookingEventsProcessed("malformed")
		// Unparseable payloads never succeed on retry.
		p.Logger.Error(ctx, "Dropping malformed booking event", logger.WithError(err))
		return nil
	}

	err := p.UoW.Do(ctx, func(provider outbound.RepositoryProvider) error {
		if err := provider.Rides().Save(ctx, ride); err != nil {
			return err
		}
		if ride.UserID != "" {
			return provider.Profiles().RecordRide(ctx, ride.UserID)
		}
		return nil
	})
	if err != nil {
		p.Metrics.IncBookingEventsProcessed("error")
		return fmt.Errorf("project booking %s: %w", ride.ID, err)
	}

	p.Metrics.IncBookingEventsProcessed("ok")
	p.Logger.Info(ctx, "Ride recorded",
		logger.String("ride_id", ride.ID),
		logger.Int("driver_id", ride.DriverID),
	)
	return nil
}
