package auth

import (
	"context"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

// SignOutUseCaseImpl revokes the provider session and clears the account
// binding; the gateway session itself, with its location and driver state,
// stays alive. Provider revocation failures are logged but never keep the
// user signed in locally.
type SignOutUseCaseImpl struct {
	Sessions *session.Store
	Identity outbound.Identity
	Logger   logger.Logger
}

func NewSignOutUseCase(sessions *session.Store, identity outbound.Identity, log logger.Logger) *SignOutUseCaseImpl {
	return &SignOutUseCaseImpl{Sessions: sessions, Identity: identity, Logger: log}
}

func (uc *SignOutUseCaseImpl) Execute(ctx context.Context, input SignOutInput) error {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return err
	}

	if acc := sess.Account(); acc != nil {
		if err := uc.Identity.SignOut(ctx, acc.ProviderSessionID); err != nil {
			uc.Logger.Warn(ctx, "provider sign-out failed",
				logger.String("session_id", sess.ID),
				logger.WithError(err),
			)
		}
	}

	sess.ClearAccount()
	return nil
}
