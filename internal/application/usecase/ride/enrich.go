package ride

import (
	"context"
	"fmt"

	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

type EnrichUseCaseImpl struct {
	Sessions      *session.Store
	CitySpeedKmh  float64
	FarePerMinute float64
	Logger        logger.Logger
}

func NewEnrichUseCase(sessions *session.Store, citySpeedKmh, farePerMinute float64, log logger.Logger) *EnrichUseCaseImpl {
	return &EnrichUseCaseImpl{
		Sessions:      sessions,
		CitySpeedKmh:  citySpeedKmh,
		FarePerMinute: farePerMinute,
		Logger:        log,
	}
}

// Execute fills in the optional Time/Price marker fields once a destination
// is known: pickup leg (driver to user) plus trip leg (user to destination)
// at city driving speed. Rendering never waits on this stage and works
// without it; when the preconditions are missing this is a no-op.
func (uc *EnrichUseCaseImpl) Execute(ctx context.Context, input EnrichInput) error {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return err
	}

	userPt, destPt := sess.Points()
	markers := sess.Drivers()
	if userPt == nil || destPt == nil || len(markers) == 0 {
		return nil
	}

	speedMpm := uc.CitySpeedKmh * 1000 / 60 // meters per minute

	result := markers[:0:0]
	for _, m := range markers {
		pickup := geo.Haversine(m.Point(), *userPt)
		trip := geo.Haversine(*userPt, *destPt)
		minutes := (pickup + trip) / speedMpm
		price := fmt.Sprintf("%.2f", minutes*uc.FarePerMinute)

		m.Time = &minutes
		m.Price = &price
		result = append(result, m)
	}

	sess.ReplaceDrivers(result)
	uc.Logger.Debug(ctx, "Markers enriched",
		logger.String("session_id", sess.ID),
		logger.Int("markers", len(result)),
	)
	return nil
}
