package ride

import (
	"context"
	"errors"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/session"
)

var ErrNotSignedIn = errors.New("session has no signed-in account")

type HistoryInput struct {
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

type HistoryOutput struct {
	Rides []outbound.RideRecord `json:"rides"`
}

type HistoryUseCase interface {
	Execute(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}

// HistoryUseCaseImpl lists the signed-in rider's most recent bookings.
type HistoryUseCaseImpl struct {
	Sessions *session.Store
	Rides    outbound.RideHistoryRepository
}

func NewHistoryUseCase(sessions *session.Store, rides outbound.RideHistoryRepository) *HistoryUseCaseImpl {
	return &HistoryUseCaseImpl{Sessions: sessions, Rides: rides}
}

func (uc *HistoryUseCaseImpl) Execute(ctx context.Context, input HistoryInput) (HistoryOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return HistoryOutput{}, err
	}

	acc := sess.Account()
	if acc == nil {
		return HistoryOutput{}, ErrNotSignedIn
	}

	rides, err := uc.Rides.RecentByUser(ctx, acc.UserID, input.Limit)
	if err != nil {
		return HistoryOutput{}, err
	}
	return HistoryOutput{Rides: rides}, nil
}
