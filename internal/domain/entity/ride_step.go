package entity

import "errors"

var ErrInvalidStateTransition = errors.New("invalid state transition")

// FlowGates exposes the state reads that gate forward navigation. The flow
// itself holds no location or driver data; it only consults these.
type FlowGates interface {
	DestinationSet() bool
	DriverSelected() bool
}

// RideStep is one screen of the ride-booking flow. Forward navigation is
// linear (Home -> Find -> Confirm -> Book); backward navigation follows an
// asymmetric per-step mapping that deliberately skips intermediate selection
// states rather than a generic pop.
type RideStep interface {
	Name() string
	Next(g FlowGates) (RideStep, error)
	Back(canPop bool) RideStep
}

type HomeStep struct{}

func (s *HomeStep) Name() string { return "HOME" }

func (s *HomeStep) Next(g FlowGates) (RideStep, error) {
	return &FindStep{}, nil
}

func (s *HomeStep) Back(canPop bool) RideStep { return s }

type FindStep struct{}

func (s *FindStep) Name() string { return "FIND" }

func (s *FindStep) Next(g FlowGates) (RideStep, error) {
	if !g.DestinationSet() {
		return s, ErrDestinationNotSet
	}
	return &ConfirmStep{}, nil
}

func (s *FindStep) Back(canPop bool) RideStep { return &HomeStep{} }

type ConfirmStep struct{}

func (s *ConfirmStep) Name() string { return "CONFIRM" }

func (s *ConfirmStep) Next(g FlowGates) (RideStep, error) {
	if !g.DriverSelected() {
		return s, ErrNoDriverSelected
	}
	return &BookStep{}, nil
}

func (s *ConfirmStep) Back(canPop bool) RideStep { return &FindStep{} }

type BookStep struct{}

func (s *BookStep) Name() string { return "BOOK" }

func (s *BookStep) Next(g FlowGates) (RideStep, error) {
	return s, ErrInvalidStateTransition
}

// Back from the booking screen is the generic rule: pop when the host can,
// otherwise land on home.
func (s *BookStep) Back(canPop bool) RideStep {
	if canPop {
		return &ConfirmStep{}
	}
	return &HomeStep{}
}

// RideFlow tracks the current step of one booking flow. Transitions are pure
// navigation events; all gating reads come through FlowGates.
type RideFlow struct {
	step RideStep
}

func NewRideFlow() *RideFlow {
	return &RideFlow{step: &HomeStep{}}
}

func (f *RideFlow) Step() RideStep { return f.step }

func (f *RideFlow) StepName() string { return f.step.Name() }

// Advance moves one step forward. On a gate rejection the step is unchanged
// and the gate error is returned for the caller to surface as a prompt.
func (f *RideFlow) Advance(g FlowGates) error {
	next, err := f.step.Next(g)
	if err != nil {
		return err
	}
	f.step = next
	return nil
}

// Back applies the per-step backward mapping.
func (f *RideFlow) Back(canPop bool) {
	f.step = f.step.Back(canPop)
}
