package outbound

import "context"

// RepositoryProvider hands out repositories bound to one transaction.
type RepositoryProvider interface {
	Profiles() ProfileRepository
	Rides() RideHistoryRepository
}

// UnitOfWork runs fn atomically: every repository write inside commits or
// rolls back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(provider RepositoryProvider) error) error
}
