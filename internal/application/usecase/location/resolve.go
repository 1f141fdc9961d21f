package location

import (
	"context"
	"errors"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrCoordinatesRequired = errors.New("latitude and longitude are required")
)

// ResolveUseCaseImpl records the device location for a session and attaches a
// human readable address via reverse geocoding. A geocoder failure falls back
// to formatted coordinates rather than failing the request.
type ResolveUseCaseImpl struct {
	Sessions *session.Store
	Places   outbound.PlaceSearch
	Logger   logger.Logger
}

func NewResolveUseCase(sessions *session.Store, places outbound.PlaceSearch, log logger.Logger) *ResolveUseCaseImpl {
	return &ResolveUseCaseImpl{Sessions: sessions, Places: places, Logger: log}
}

func (uc *ResolveUseCaseImpl) Execute(ctx context.Context, input ResolveInput) (ResolveOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return ResolveOutput{}, err
	}

	if input.PermissionDenied {
		sess.MarkPermissionDenied()
		return ResolveOutput{}, ErrPermissionDenied
	}

	if input.Latitude == nil || input.Longitude == nil {
		return ResolveOutput{}, ErrCoordinatesRequired
	}

	point, err := geo.NewGeoPoint(*input.Latitude, *input.Longitude)
	if err != nil {
		return ResolveOutput{}, err
	}

	address, err := uc.Places.Reverse(ctx, point)
	if err != nil || address == "" {
		if err != nil {
			uc.Logger.Warn(ctx, "reverse geocode failed, using coordinate fallback",
				logger.Float64("lat", point.Latitude),
				logger.Float64("lon", point.Longitude),
				logger.WithError(err),
			)
		}
		address = geo.FallbackAddress(point)
	}

	sess.SetUserLocation(geo.NamedLocation{Point: point, Address: address})

	return ResolveOutput{
		Address:   address,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}, nil
}

// DestinationUseCaseImpl stores the chosen destination on the session. The
// address comes from the search suggestion the user picked, so no reverse
// geocoding happens here.
type DestinationUseCaseImpl struct {
	Sessions *session.Store
	Logger   logger.Logger
}

func NewDestinationUseCase(sessions *session.Store, log logger.Logger) *DestinationUseCaseImpl {
	return &DestinationUseCaseImpl{Sessions: sessions, Logger: log}
}

func (uc *DestinationUseCaseImpl) Execute(ctx context.Context, input DestinationInput) (DestinationOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return DestinationOutput{}, err
	}

	point, err := geo.NewGeoPoint(input.Latitude, input.Longitude)
	if err != nil {
		return DestinationOutput{}, err
	}

	address := input.Address
	if address == "" {
		address = geo.FallbackAddress(point)
	}

	sess.SetDestinationLocation(geo.NamedLocation{Point: point, Address: address})

	return DestinationOutput{
		Address:   address,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}, nil
}
