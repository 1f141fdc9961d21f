package auth

import (
	"context"
	"strings"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

// SignInUseCaseImpl authenticates an existing account. Only a complete
// provider session activates locally; anything else is reported back without
// touching session state.
type SignInUseCaseImpl struct {
	Sessions *session.Store
	Identity outbound.Identity
	Logger   logger.Logger
}

func NewSignInUseCase(sessions *session.Store, identity outbound.Identity, log logger.Logger) *SignInUseCaseImpl {
	return &SignInUseCaseImpl{Sessions: sessions, Identity: identity, Logger: log}
}

func (uc *SignInUseCaseImpl) Execute(ctx context.Context, input SignInInput) (SignInOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return SignInOutput{}, err
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return SignInOutput{}, ErrEmailRequired
	}
	if input.Password == "" {
		return SignInOutput{}, ErrPasswordRequired
	}

	result, err := uc.Identity.SignIn(ctx, email, input.Password)
	if err != nil {
		uc.Logger.Warn(ctx, "sign-in rejected by identity provider",
			logger.String("session_id", sess.ID),
			logger.WithError(err),
		)
		return SignInOutput{}, err
	}

	if result.Status != outbound.SessionComplete {
		return SignInOutput{Status: string(result.Status)}, nil
	}

	sess.Activate(session.Account{
		ProviderSessionID: result.SessionID,
		UserID:            result.UserID,
	})

	uc.Logger.Info(ctx, "sign-in complete",
		logger.String("session_id", sess.ID),
	)

	return SignInOutput{Status: string(result.Status), UserID: result.UserID}, nil
}
