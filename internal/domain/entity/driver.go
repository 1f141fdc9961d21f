package entity

import "github.com/gocabs/rideflow/internal/domain/geo"

// Driver is a raw candidate driver record as reported by the driver data
// service. Read-only to this package.
type Driver struct {
	ID              int
	FirstName       string
	LastName        string
	ProfileImageURL string
	CarImageURL     string
	CarSeats        int
	Rating          string
	CurrentLocation geo.GeoPoint
}

func (d Driver) Validate() error {
	if d.ID == 0 {
		return ErrIDIsRequired
	}
	if d.FirstName == "" {
		return ErrFirstNameRequired
	}
	if d.CarSeats <= 0 {
		return ErrCarSeatsMustBePos
	}
	return nil
}
