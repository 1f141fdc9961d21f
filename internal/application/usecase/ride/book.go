package ride

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/events"
)

type BookUseCaseImpl struct {
	Sessions        *session.Store
	EventName       string
	EventDispatcher events.EventDispatcher
}

func NewBookUseCase(sessions *session.Store, eventName string, dispatcher events.EventDispatcher) *BookUseCaseImpl {
	return &BookUseCaseImpl{
		Sessions:        sessions,
		EventName:       eventName,
		EventDispatcher: dispatcher,
	}
}

// Execute confirms the booking from the confirm step. A missing driver
// selection is an expected, recoverable condition the caller turns into a
// prompt. The step advances only once the event is out; every failure path
// leaves the session on the confirm step.
func (uc *BookUseCaseImpl) Execute(ctx context.Context, input BookInput) (BookOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return BookOutput{}, err
	}

	if sess.FlowStep() != "CONFIRM" {
		return BookOutput{}, entity.ErrInvalidStateTransition
	}

	driver, ok := sess.SelectedDriver()
	if !ok {
		return BookOutput{}, entity.ErrNoDriverSelected
	}

	user := sess.UserLocation()
	dest := sess.DestinationLocation()
	if user == nil || dest == nil {
		return BookOutput{}, entity.ErrDestinationNotSet
	}

	output := BookOutput{
		RideID:             uuid.NewString(),
		DriverID:           driver.ID,
		OriginAddress:      user.Address,
		DestinationAddress: dest.Address,
	}
	if driver.Price != nil {
		output.FarePrice = *driver.Price
	}

	payload := outbound.RideRecord{
		ID:                 output.RideID,
		DriverID:           driver.ID,
		OriginAddress:      user.Address,
		DestinationAddress: dest.Address,
		OriginLatitude:     user.Point.Latitude,
		OriginLongitude:    user.Point.Longitude,
		DestLatitude:       dest.Point.Latitude,
		DestLongitude:      dest.Point.Longitude,
		FarePrice:          output.FarePrice,
		BookedAt:           time.Now(),
	}
	if acc := sess.Account(); acc != nil {
		payload.UserID = acc.UserID
	}

	// One event per booking; concurrent requests must never share a payload.
	evt := events.NewBaseEvent(uc.EventName)
	evt.SetPayload(payload)
	if err := uc.EventDispatcher.Dispatch(ctx, evt); err != nil {
		return BookOutput{}, fmt.Errorf("failed to publish booking: %w", err)
	}

	if err := sess.AdvanceFlow(); err != nil {
		return BookOutput{}, err
	}
	return output, nil
}
