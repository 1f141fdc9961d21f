package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepositoryImpl struct {
	db dbtx
}

func NewProfileRepository(db *sql.DB) *ProfileRepositoryImpl {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Save(ctx context.Context, p outbound.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (provider_id, name, email, total_rides)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (provider_id)
		DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email`,
		p.ProviderID, p.Name, p.Email,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindByProviderID(ctx context.Context, providerID string) (outbound.Profile, error) {
	var p outbound.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT provider_id, name, email, total_rides
		FROM profiles
		WHERE provider_id = $1`,
		providerID,
	).Scan(&p.ProviderID, &p.Name, &p.Email, &p.TotalRides)
	if errors.Is(err, sql.ErrNoRows) {
		return outbound.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return outbound.Profile{}, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepositoryImpl) RecordRide(ctx context.Context, providerID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET total_rides = total_rides + 1
		WHERE provider_id = $1`,
		providerID,
	)
	if err != nil {
		return fmt.Errorf("record ride: %w", err)
	}
	return nil
}
