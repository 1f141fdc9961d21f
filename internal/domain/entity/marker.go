package entity

import (
	"strings"

	"github.com/gocabs/rideflow/internal/domain/geo"
)

// MarkerData is a drawable point of interest derived 1:1 from a Driver. ID is
// stable and equals the source driver id; it is the selection and render key.
// Time and Price stay nil until the optional enrichment stage fills them in.
type MarkerData struct {
	ID              int      `json:"id"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Title           string   `json:"title"`
	ProfileImageURL string   `json:"profile_image_url"`
	CarImageURL     string   `json:"car_image_url"`
	CarSeats        int      `json:"car_seats"`
	Rating          string   `json:"rating"`
	FirstName       string   `json:"first_name"`
	Time            *float64 `json:"time,omitempty"`
	Price           *string  `json:"price,omitempty"`
}

// GenerateMarkers derives one marker per driver, in input order. A nil user
// location yields no markers: without a reference point there is nothing
// meaningful to frame. Drivers are plotted at their own reported position.
// The result is a fresh slice every call; callers replace, never merge.
func GenerateMarkers(drivers []Driver, userLocation *geo.GeoPoint) []MarkerData {
	if userLocation == nil {
		return []MarkerData{}
	}

	markers := make([]MarkerData, len(drivers))
	for i, d := range drivers {
		markers[i] = MarkerData{
			ID:              d.ID,
			Latitude:        d.CurrentLocation.Latitude,
			Longitude:       d.CurrentLocation.Longitude,
			Title:           strings.TrimSpace(d.FirstName + " " + d.LastName),
			ProfileImageURL: d.ProfileImageURL,
			CarImageURL:     d.CarImageURL,
			CarSeats:        d.CarSeats,
			Rating:          d.Rating,
			FirstName:       d.FirstName,
		}
	}
	return markers
}

// Point returns the marker's geographic position.
func (m MarkerData) Point() geo.GeoPoint {
	return geo.GeoPoint{Latitude: m.Latitude, Longitude: m.Longitude}
}
