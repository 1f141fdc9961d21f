package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

type fakeGeocoder struct {
	address string
	err     error
}

func (f *fakeGeocoder) Search(ctx context.Context, text string, limit int) ([]outbound.Place, error) {
	return nil, errors.New("not used")
}

func (f *fakeGeocoder) Reverse(ctx context.Context, p geo.GeoPoint) (string, error) {
	return f.address, f.err
}

func ptr(v float64) *float64 { return &v }

func TestResolveUseCase_Execute(t *testing.T) {
	t.Run("Should store the location with the geocoded address", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewResolveUseCase(store, &fakeGeocoder{address: "Market St, San Francisco"}, logger.NewNop())
		out, err := uc.Execute(context.Background(), ResolveInput{
			SessionID: sess.ID,
			Latitude:  ptr(37.78),
			Longitude: ptr(-122.41),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Market St, San Francisco", out.Address)

		loc := sess.UserLocation()
		assert.NotNil(t, loc)
		assert.Equal(t, 37.78, loc.Point.Latitude)
		assert.Equal(t, "Market St, San Francisco", loc.Address)
	})

	t.Run("Should fall back to formatted coordinates when geocoding fails", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewResolveUseCase(store, &fakeGeocoder{err: errors.New("timeout")}, logger.NewNop())
		out, err := uc.Execute(context.Background(), ResolveInput{
			SessionID: sess.ID,
			Latitude:  ptr(37.78),
			Longitude: ptr(-122.41),
		})

		assert.NoError(t, err)
		assert.Equal(t, "37.7800, -122.4100", out.Address)
		assert.NotNil(t, sess.UserLocation())
	})

	t.Run("Should mark the session degraded on permission denial", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewResolveUseCase(store, &fakeGeocoder{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), ResolveInput{
			SessionID:        sess.ID,
			PermissionDenied: true,
		})

		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.True(t, sess.PermissionDenied())
		assert.Nil(t, sess.UserLocation())
	})

	t.Run("Should reject out-of-range coordinates", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewResolveUseCase(store, &fakeGeocoder{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), ResolveInput{
			SessionID: sess.ID,
			Latitude:  ptr(91),
			Longitude: ptr(0),
		})

		assert.ErrorIs(t, err, geo.ErrLatitudeOutOfRange)
	})

	t.Run("Should require both coordinates", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewResolveUseCase(store, &fakeGeocoder{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), ResolveInput{
			SessionID: sess.ID,
			Latitude:  ptr(37.78),
		})

		assert.ErrorIs(t, err, ErrCoordinatesRequired)
	})
}

func TestDestinationUseCase_Execute(t *testing.T) {
	t.Run("Should store the destination without touching the user location", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		sess.SetUserLocation(geo.NamedLocation{
			Point:   geo.GeoPoint{Latitude: 37.78, Longitude: -122.41},
			Address: "Market St",
		})

		uc := NewDestinationUseCase(store, logger.NewNop())
		out, err := uc.Execute(context.Background(), DestinationInput{
			SessionID: sess.ID,
			Latitude:  37.79,
			Longitude: -122.40,
			Address:   "Mission St",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Mission St", out.Address)
		assert.Equal(t, "Market St", sess.UserLocation().Address)
		assert.Equal(t, "Mission St", sess.DestinationLocation().Address)
	})

	t.Run("Should synthesize an address when the suggestion had none", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewDestinationUseCase(store, logger.NewNop())
		out, err := uc.Execute(context.Background(), DestinationInput{
			SessionID: sess.ID,
			Latitude:  37.79,
			Longitude: -122.40,
		})

		assert.NoError(t, err)
		assert.Equal(t, "37.7900, -122.4000", out.Address)
	})
}
