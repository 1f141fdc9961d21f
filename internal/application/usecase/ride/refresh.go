package ride

import (
	"context"
	"fmt"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
	"github.com/gocabs/rideflow/pkg/metrics"
)

type RefreshUseCaseImpl struct {
	Sessions *session.Store
	Drivers  outbound.DriverSource
	Metrics  metrics.Metrics
	Logger   logger.Logger
}

func NewRefreshUseCase(sessions *session.Store, drivers outbound.DriverSource, m metrics.Metrics, log logger.Logger) *RefreshUseCaseImpl {
	return &RefreshUseCaseImpl{
		Sessions: sessions,
		Drivers:  drivers,
		Metrics:  m,
		Logger:   log,
	}
}

// Execute fetches the candidate driver list, regenerates the marker set from
// scratch and replaces the session's driver state. The generation observed
// before the fetch guards the write: a response that resolves after newer
// state has superseded it is dropped, not merged.
func (uc *RefreshUseCaseImpl) Execute(ctx context.Context, input RefreshInput) (RefreshOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return RefreshOutput{}, err
	}

	gen := sess.DriverGeneration()
	userPt, destPt := sess.Points()

	drivers, err := uc.Drivers.Fetch(ctx)
	if err != nil {
		// Previous state is retained; the caller renders an error state.
		return RefreshOutput{}, fmt.Errorf("driver fetch failed: %w", err)
	}

	markers := entity.GenerateMarkers(drivers, userPt)
	uc.Metrics.RecordMarkersGenerated(len(markers))

	if !sess.SetDrivers(markers, gen) {
		uc.Metrics.IncStaleResponsesDropped("drivers")
		uc.Logger.Debug(ctx, "Stale driver refresh discarded",
			logger.String("session_id", sess.ID),
		)
		markers = sess.Drivers()
	}

	userPt, destPt = sess.Points()
	return RefreshOutput{
		Markers: markers,
		Region:  entity.ComputeRegion(userPt, destPt),
	}, nil
}
