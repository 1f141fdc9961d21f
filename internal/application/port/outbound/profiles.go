package outbound

import "context"

// Profile is the local mirror of an identity-provider account; persisted
// before the session is activated so a reader of "active session" can assume
// the profile already exists.
type Profile struct {
	Name       string
	Email      string
	ProviderID string
	TotalRides int
}

type ProfileRepository interface {
	Save(ctx context.Context, p Profile) error
	FindByProviderID(ctx context.Context, providerID string) (Profile, error)
	// RecordRide bumps the rider's completed-ride counter.
	RecordRide(ctx context.Context, providerID string) error
}
