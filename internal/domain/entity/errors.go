package entity

import "errors"

var (
	ErrIDIsRequired       = errors.New("driver id is required")
	ErrCarSeatsMustBePos  = errors.New("car seats must be greater than zero")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrNoDriverSelected   = errors.New("no driver selected")
	ErrDestinationNotSet  = errors.New("destination is not set")
)
