package session

import (
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
)

// LocationState is the single source of truth for the user's current location
// and chosen destination. Both start absent and are overwritten wholesale.
// Not safe for concurrent use on its own; Session serializes access.
type LocationState struct {
	user        *geo.NamedLocation
	destination *geo.NamedLocation
}

func (s *LocationState) SetUserLocation(loc geo.NamedLocation) {
	s.user = &loc
}

func (s *LocationState) SetDestinationLocation(loc geo.NamedLocation) {
	s.destination = &loc
}

func (s *LocationState) UserLocation() *geo.NamedLocation {
	return s.user
}

func (s *LocationState) DestinationLocation() *geo.NamedLocation {
	return s.destination
}

// UserPoint returns the bare coordinates of the user location, nil when the
// location has not resolved yet.
func (s *LocationState) UserPoint() *geo.GeoPoint {
	if s.user == nil {
		return nil
	}
	p := s.user.Point
	return &p
}

func (s *LocationState) DestinationPoint() *geo.GeoPoint {
	if s.destination == nil {
		return nil
	}
	p := s.destination.Point
	return &p
}

// DriverState holds the current marker list (insertion order = source order)
// and the single selected driver id. Selection is always consistent with the
// list: replacing the list clears a selection that no longer resolves.
type DriverState struct {
	drivers  []entity.MarkerData
	selected *int
}

// SetDrivers replaces the list wholesale. A previously selected id that is
// absent from the new list is cleared rather than left dangling.
func (s *DriverState) SetDrivers(markers []entity.MarkerData) {
	s.drivers = markers
	if s.selected != nil && !s.contains(*s.selected) {
		s.selected = nil
	}
}

// SetSelectedDriver records the selection only when the id is present in the
// current list; unknown ids are ignored rather than trusted.
func (s *DriverState) SetSelectedDriver(id int) {
	if !s.contains(id) {
		return
	}
	s.selected = &id
}

func (s *DriverState) ClearSelectedDriver() {
	s.selected = nil
}

func (s *DriverState) Drivers() []entity.MarkerData {
	return s.drivers
}

// SelectedDriver returns the selected marker, or false when nothing is
// selected.
func (s *DriverState) SelectedDriver() (entity.MarkerData, bool) {
	if s.selected == nil {
		return entity.MarkerData{}, false
	}
	for _, m := range s.drivers {
		if m.ID == *s.selected {
			return m, true
		}
	}
	return entity.MarkerData{}, false
}

func (s *DriverState) SelectedDriverID() *int {
	return s.selected
}

func (s *DriverState) contains(id int) bool {
	for _, m := range s.drivers {
		if m.ID == id {
			return true
		}
	}
	return false
}
