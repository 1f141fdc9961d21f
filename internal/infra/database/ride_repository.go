package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
)

type RideRepositoryImpl struct {
	db dbtx
}

func NewRideRepository(db *sql.DB) *RideRepositoryImpl {
	return &RideRepositoryImpl{db: db}
}

func (r *RideRepositoryImpl) Save(ctx context.Context, ride outbound.RideRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rides (
			id, user_id, driver_id,
			origin_address, destination_address,
			origin_latitude, origin_longitude,
			destination_latitude, destination_longitude,
			fare_price, booked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`,
		ride.ID, ride.UserID, ride.DriverID,
		ride.OriginAddress, ride.DestinationAddress,
		ride.OriginLatitude, ride.OriginLongitude,
		ride.DestLatitude, ride.DestLongitude,
		ride.FarePrice, ride.BookedAt,
	)
	if err != nil {
		return fmt.Errorf("save ride: %w", err)
	}
	return nil
}

func (r *RideRepositoryImpl) RecentByUser(ctx context.Context, userID string, limit int) ([]outbound.RideRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, driver_id,
		       origin_address, destination_address,
		       origin_latitude, origin_longitude,
		       destination_latitude, destination_longitude,
		       fare_price, booked_at
		FROM rides
		WHERE user_id = $1
		ORDER BY booked_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent rides: %w", err)
	}
	defer rows.Close()

	rides := make([]outbound.RideRecord, 0, limit)
	for rows.Next() {
		var ride outbound.RideRecord
		if err := rows.Scan(
			&ride.ID, &ride.UserID, &ride.DriverID,
			&ride.OriginAddress, &ride.DestinationAddress,
			&ride.OriginLatitude, &ride.OriginLongitude,
			&ride.DestLatitude, &ride.DestLongitude,
			&ride.FarePrice, &ride.BookedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ride: %w", err)
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rides: %w", err)
	}
	return rides, nil
}
