package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

type fakeIdentity struct {
	signUpResult outbound.PendingVerification
	signUpErr    error

	verifyResult outbound.SessionResult
	verifyErr    error

	signInResult outbound.SessionResult
	signInErr    error

	signOutErr    error
	signedOutWith string
}

func (f *fakeIdentity) SignIn(ctx context.Context, identifier, secret string) (outbound.SessionResult, error) {
	return f.signInResult, f.signInErr
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, secret string) (outbound.PendingVerification, error) {
	return f.signUpResult, f.signUpErr
}

func (f *fakeIdentity) Verify(ctx context.Context, attemptID, code string) (outbound.SessionResult, error) {
	return f.verifyResult, f.verifyErr
}

func (f *fakeIdentity) SignOut(ctx context.Context, sessionID string) error {
	f.signedOutWith = sessionID
	return f.signOutErr
}

type fakeProfiles struct {
	saved    []outbound.Profile
	saveErr  error
	profiles map[string]outbound.Profile
}

func (f *fakeProfiles) Save(ctx context.Context, p outbound.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakeProfiles) RecordRide(ctx context.Context, providerID string) error {
	return nil
}

func (f *fakeProfiles) FindByProviderID(ctx context.Context, providerID string) (outbound.Profile, error) {
	p, ok := f.profiles[providerID]
	if !ok {
		return outbound.Profile{}, errors.New("profile not found")
	}
	return p, nil
}

func pendingSession(t *testing.T, store *session.Store, identity *fakeIdentity) *session.Session {
	t.Helper()
	sess := store.Create()
	identity.signUpResult = outbound.PendingVerification{AttemptID: "attempt-1"}

	signUp := NewSignUpUseCase(store, identity, logger.NewNop())
	_, err := signUp.Execute(context.Background(), SignUpInput{
		SessionID: sess.ID,
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "hunter22",
	})
	assert.NoError(t, err)
	return sess
}

func TestSignUpUseCase_Execute(t *testing.T) {
	t.Run("Should move verification to pending on provider accept", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		identity := &fakeIdentity{}
		sess := pendingSession(t, store, identity)

		assert.Equal(t, entity.VerificationPending, sess.Verification().Phase)
		pending := sess.PendingSignUp()
		assert.NotNil(t, pending)
		assert.Equal(t, "attempt-1", pending.AttemptID)
		assert.Equal(t, "Ada", pending.Name)
	})

	t.Run("Should keep the default phase when the provider rejects", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		identity := &fakeIdentity{signUpErr: errors.New("email already taken")}

		uc := NewSignUpUseCase(store, identity, logger.NewNop())
		out, err := uc.Execute(context.Background(), SignUpInput{
			SessionID: sess.ID,
			Email:     "ada@example.com",
			Password:  "hunter22",
		})

		assert.Error(t, err)
		assert.Equal(t, string(entity.VerificationDefault), out.VerificationPhase)
		assert.Equal(t, entity.VerificationDefault, sess.Verification().Phase)
		assert.Empty(t, sess.Verification().Error)
		assert.Nil(t, sess.PendingSignUp())
	})

	t.Run("Should validate required fields", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewSignUpUseCase(store, &fakeIdentity{}, logger.NewNop())

		_, err := uc.Execute(context.Background(), SignUpInput{SessionID: sess.ID, Password: "x"})
		assert.ErrorIs(t, err, ErrEmailRequired)

		_, err = uc.Execute(context.Background(), SignUpInput{SessionID: sess.ID, Email: "a@b.c"})
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})
}

func TestVerifyUseCase_Execute(t *testing.T) {
	t.Run("Should persist the profile before activating the session", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		identity := &fakeIdentity{}
		sess := pendingSession(t, store, identity)
		identity.verifyResult = outbound.SessionResult{
			Status:    outbound.SessionComplete,
			SessionID: "prov-sess-1",
			UserID:    "user-1",
		}
		profiles := &fakeProfiles{}

		uc := NewVerifyUseCase(store, identity, profiles, logger.NewNop())
		out, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "123456"})

		assert.NoError(t, err)
		assert.Equal(t, string(entity.VerificationDefault), out.VerificationPhase)
		assert.Equal(t, "user-1", out.UserID)

		assert.Len(t, profiles.saved, 1)
		assert.Equal(t, "Ada", profiles.saved[0].Name)
		assert.Equal(t, "user-1", profiles.saved[0].ProviderID)

		acc := sess.Account()
		assert.NotNil(t, acc)
		assert.Equal(t, "prov-sess-1", acc.ProviderSessionID)
		assert.Nil(t, sess.PendingSignUp())
	})

	t.Run("Should not activate when the profile save fails", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		identity := &fakeIdentity{}
		sess := pendingSession(t, store, identity)
		identity.verifyResult = outbound.SessionResult{Status: outbound.SessionComplete, UserID: "user-1"}
		profiles := &fakeProfiles{saveErr: errors.New("db down")}

		uc := NewVerifyUseCase(store, identity, profiles, logger.NewNop())
		_, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "123456"})

		assert.Error(t, err)
		assert.Nil(t, sess.Account())
	})

	t.Run("Should fail with the provider message and clear the code", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		identity := &fakeIdentity{}
		sess := pendingSession(t, store, identity)
		identity.verifyErr = errors.New("incorrect code")

		uc := NewVerifyUseCase(store, identity, &fakeProfiles{}, logger.NewNop())
		out, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "000000"})

		assert.NoError(t, err)
		assert.Equal(t, string(entity.VerificationFailed), out.VerificationPhase)
		assert.Equal(t, "incorrect code", out.Error)
		assert.Empty(t, sess.Verification().Code)
		assert.Nil(t, sess.Account())
	})

	t.Run("Should allow resubmission after a failure", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		identity := &fakeIdentity{}
		sess := pendingSession(t, store, identity)
		identity.verifyErr = errors.New("incorrect code")

		uc := NewVerifyUseCase(store, identity, &fakeProfiles{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "000000"})
		assert.NoError(t, err)

		identity.verifyErr = nil
		identity.verifyResult = outbound.SessionResult{Status: outbound.SessionComplete, UserID: "user-1"}

		out, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "123456"})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", out.UserID)
		assert.NotNil(t, sess.Account())
	})

	t.Run("Should reject a submission before sign-up", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()

		uc := NewVerifyUseCase(store, &fakeIdentity{}, &fakeProfiles{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), VerifyInput{SessionID: sess.ID, Code: "123456"})

		assert.ErrorIs(t, err, ErrVerificationNotActive)
	})
}

func TestSignInUseCase_Execute(t *testing.T) {
	t.Run("Should activate on a complete provider session", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		identity := &fakeIdentity{signInResult: outbound.SessionResult{
			Status:    outbound.SessionComplete,
			SessionID: "prov-sess-2",
			UserID:    "user-2",
		}}

		uc := NewSignInUseCase(store, identity, logger.NewNop())
		out, err := uc.Execute(context.Background(), SignInInput{
			SessionID: sess.ID,
			Email:     "ada@example.com",
			Password:  "hunter22",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(outbound.SessionComplete), out.Status)
		assert.NotNil(t, sess.Account())
	})

	t.Run("Should report incomplete sessions without activating", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		identity := &fakeIdentity{signInResult: outbound.SessionResult{Status: outbound.SessionNeedsSteps}}

		uc := NewSignInUseCase(store, identity, logger.NewNop())
		out, err := uc.Execute(context.Background(), SignInInput{
			SessionID: sess.ID,
			Email:     "ada@example.com",
			Password:  "hunter22",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(outbound.SessionNeedsSteps), out.Status)
		assert.Nil(t, sess.Account())
	})
}

func TestSignOutUseCase_Execute(t *testing.T) {
	t.Run("Should revoke the provider session and clear the account binding", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		sess.Activate(session.Account{ProviderSessionID: "prov-sess-3", UserID: "user-3"})
		identity := &fakeIdentity{}

		uc := NewSignOutUseCase(store, identity, logger.NewNop())
		err := uc.Execute(context.Background(), SignOutInput{SessionID: sess.ID})

		assert.NoError(t, err)
		assert.Equal(t, "prov-sess-3", identity.signedOutWith)
		assert.Nil(t, sess.Account())
	})

	t.Run("Should keep the session and its state after sign-out", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		sess.SetUserLocation(geo.NamedLocation{
			Point:   geo.GeoPoint{Latitude: 37.78, Longitude: -122.41},
			Address: "Market St",
		})
		sess.Activate(session.Account{ProviderSessionID: "prov-sess-5"})

		uc := NewSignOutUseCase(store, &fakeIdentity{}, logger.NewNop())
		assert.NoError(t, uc.Execute(context.Background(), SignOutInput{SessionID: sess.ID}))

		got, err := store.Get(sess.ID)
		assert.NoError(t, err)
		assert.Nil(t, got.Account())
		assert.Equal(t, "Market St", got.UserLocation().Address)
	})

	t.Run("Should sign out locally even when revocation fails", func(t *testing.T) {
		store := session.NewStore(session.StoreConfig{})
		defer store.Close()
		sess := store.Create()
		sess.Activate(session.Account{ProviderSessionID: "prov-sess-4"})
		identity := &fakeIdentity{signOutErr: errors.New("provider down")}

		uc := NewSignOutUseCase(store, identity, logger.NewNop())
		err := uc.Execute(context.Background(), SignOutInput{SessionID: sess.ID})

		assert.NoError(t, err)
		assert.Nil(t, sess.Account())
	})
}
