package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
)

// SignUpUseCaseImpl starts account creation: the provider sends out a
// verification code and the session waits in the pending phase for it. A
// provider failure leaves the verification state untouched; the error goes
// back to the caller as a one-shot notification.
type SignUpUseCaseImpl struct {
	Sessions *session.Store
	Identity outbound.Identity
	Logger   logger.Logger
}

func NewSignUpUseCase(sessions *session.Store, identity outbound.Identity, log logger.Logger) *SignUpUseCaseImpl {
	return &SignUpUseCaseImpl{Sessions: sessions, Identity: identity, Logger: log}
}

func (uc *SignUpUseCaseImpl) Execute(ctx context.Context, input SignUpInput) (SignUpOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return SignUpOutput{}, err
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return SignUpOutput{}, ErrEmailRequired
	}
	if input.Password == "" {
		return SignUpOutput{}, ErrPasswordRequired
	}

	pending, err := uc.Identity.SignUp(ctx, email, input.Password)
	if err != nil {
		uc.Logger.Warn(ctx, "sign-up rejected by identity provider",
			logger.String("session_id", sess.ID),
			logger.WithError(err),
		)
		return SignUpOutput{VerificationPhase: string(sess.Verification().Phase)}, err
	}

	sess.SetPendingSignUp(session.PendingSignUp{
		AttemptID: pending.AttemptID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
	})
	sess.MarkVerificationPending()

	uc.Logger.Info(ctx, "sign-up initiated, verification pending",
		logger.String("session_id", sess.ID),
	)

	return SignUpOutput{VerificationPhase: string(sess.Verification().Phase)}, nil
}
