package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
)

func markers(ids ...int) []entity.MarkerData {
	out := make([]entity.MarkerData, len(ids))
	for i, id := range ids {
		out[i] = entity.MarkerData{ID: id, FirstName: "Driver"}
	}
	return out
}

func TestDriverState_SetDriversClearsDanglingSelection(t *testing.T) {
	var s DriverState
	s.SetDrivers(markers(7, 2))
	s.SetSelectedDriver(7)

	s.SetDrivers(markers(1, 2))

	assert.Nil(t, s.SelectedDriverID())
}

func TestDriverState_SetDriversKeepsSurvivingSelection(t *testing.T) {
	var s DriverState
	s.SetDrivers(markers(7, 2))
	s.SetSelectedDriver(7)

	s.SetDrivers(markers(7, 2, 3))

	assert.Equal(t, 7, *s.SelectedDriverID())
}

func TestDriverState_SelectUnknownIDIsNoOp(t *testing.T) {
	var s DriverState
	s.SetDrivers(markers(1, 2))
	s.SetSelectedDriver(1)
	before := *s.SelectedDriverID()

	s.SetSelectedDriver(99)

	assert.Equal(t, before, *s.SelectedDriverID())
}

func TestDriverState_SelectOnEmptyListIsNoOp(t *testing.T) {
	var s DriverState

	s.SetSelectedDriver(1)

	assert.Nil(t, s.SelectedDriverID())
}

func TestLocationState_SetDestinationLeavesUserUntouched(t *testing.T) {
	var s LocationState
	s.SetUserLocation(geo.NamedLocation{
		Point:   geo.GeoPoint{Latitude: 37.78, Longitude: -122.41},
		Address: "Market St, San Francisco",
	})

	s.SetDestinationLocation(geo.NamedLocation{
		Point:   geo.GeoPoint{Latitude: 37.79, Longitude: -122.40},
		Address: "Ferry Building",
	})

	assert.Equal(t, "Market St, San Francisco", s.UserLocation().Address)
	assert.Equal(t, "Ferry Building", s.DestinationLocation().Address)
}

func TestSession_StaleDriverGenerationIsDiscarded(t *testing.T) {
	sess := New("s1")
	gen := sess.DriverGeneration()

	applied := sess.SetDrivers(markers(1, 2), gen)
	assert.True(t, applied)

	// A response carrying the old generation arrives late.
	stale := sess.SetDrivers(markers(9), gen)

	assert.False(t, stale)
	assert.Len(t, sess.Drivers(), 2)
}

func TestSession_FlowGatedOnOwnState(t *testing.T) {
	sess := New("s1")
	assert.Nil(t, sess.AdvanceFlow()) // home -> find

	err := sess.AdvanceFlow()
	assert.ErrorIs(t, err, entity.ErrDestinationNotSet)

	sess.SetDestinationLocation(geo.NamedLocation{
		Point:   geo.GeoPoint{Latitude: 37.79, Longitude: -122.40},
		Address: "Ferry Building",
	})
	assert.Nil(t, sess.AdvanceFlow()) // find -> confirm

	err = sess.AdvanceFlow()
	assert.ErrorIs(t, err, entity.ErrNoDriverSelected)
	assert.Equal(t, "CONFIRM", sess.FlowStep())

	sess.SetDrivers(markers(1), sess.DriverGeneration())
	sess.SetSelectedDriver(1)
	assert.Nil(t, sess.AdvanceFlow())
	assert.Equal(t, "BOOK", sess.FlowStep())
}

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(StoreConfig{CleanupInterval: time.Hour, SessionTimeout: time.Hour})
	defer store.Close()

	sess := store.Create()
	got, err := store.Get(sess.ID)

	assert.Nil(t, err)
	assert.Same(t, sess, got)

	store.Delete(sess.ID)
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_IdleSessionsAreSwept(t *testing.T) {
	store := NewStore(StoreConfig{
		CleanupInterval: 5 * time.Millisecond,
		SessionTimeout:  10 * time.Millisecond,
	})
	defer store.Close()

	sess := store.Create()

	assert.Eventually(t, func() bool {
		_, err := store.Get(sess.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, store.Len())
}
