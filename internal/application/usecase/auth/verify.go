package auth

import (
	"context"
	"errors"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

var (
	ErrNoPendingSignUp       = errors.New("no pending sign-up for this session")
	ErrVerificationNotActive = errors.New("verification is not awaiting a code")
	ErrCodeRequired          = errors.New("verification code is required")
)

// VerifyUseCaseImpl submits the emailed code. On success the profile mirror is
// persisted before the session activates; on rejection the machine moves to
// the failed phase with the provider's first error message and a cleared code.
type VerifyUseCaseImpl struct {
	Sessions *session.Store
	Identity outbound.Identity
	Profiles outbound.ProfileRepository
	Logger   logger.Logger
}

func NewVerifyUseCase(sessions *session.Store, identity outbound.Identity, profiles outbound.ProfileRepository, log logger.Logger) *VerifyUseCaseImpl {
	return &VerifyUseCaseImpl{Sessions: sessions, Identity: identity, Profiles: profiles, Logger: log}
}

func (uc *VerifyUseCaseImpl) Execute(ctx context.Context, input VerifyInput) (VerifyOutput, error) {
	sess, err := uc.Sessions.Get(input.SessionID)
	if err != nil {
		return VerifyOutput{}, err
	}

	if !sess.CanSubmitVerification() {
		return VerifyOutput{}, ErrVerificationNotActive
	}
	pending := sess.PendingSignUp()
	if pending == nil {
		return VerifyOutput{}, ErrNoPendingSignUp
	}
	if input.Code == "" {
		return VerifyOutput{}, ErrCodeRequired
	}

	sess.SetVerificationCode(input.Code)
	sess.BeginVerificationAttempt()

	result, err := uc.Identity.Verify(ctx, pending.AttemptID, input.Code)
	if err != nil {
		sess.FailVerification(err.Error())
		v := sess.Verification()
		return VerifyOutput{VerificationPhase: string(v.Phase), Error: v.Error}, nil
	}
	if result.Status != outbound.SessionComplete {
		sess.FailVerification("verification failed")
		v := sess.Verification()
		return VerifyOutput{VerificationPhase: string(v.Phase), Error: v.Error}, nil
	}

	// The profile mirror lands before activation so anything reading an
	// active session can rely on the profile row existing.
	profile := outbound.Profile{
		Name:       pending.Name,
		Email:      pending.Email,
		ProviderID: result.UserID,
	}
	if err := uc.Profiles.Save(ctx, profile); err != nil {
		uc.Logger.Error(ctx, "profile save failed after verification",
			logger.String("session_id", sess.ID),
			logger.WithError(err),
		)
		return VerifyOutput{}, err
	}

	sess.Activate(session.Account{
		ProviderSessionID: result.SessionID,
		UserID:            result.UserID,
	})
	sess.ResetVerification()

	uc.Logger.Info(ctx, "account verified and session activated",
		logger.String("session_id", sess.ID),
	)

	v := sess.Verification()
	return VerifyOutput{
		VerificationPhase: string(v.Phase),
		UserID:            result.UserID,
	}, nil
}
