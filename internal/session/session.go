package session

import (
	"sync"
	"time"

	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
)

// Session bundles the state containers for one app session: location state,
// driver state, the ride flow, and the verification machine. The original
// system mutated these from a single event loop; here many request goroutines
// touch a session, so every access goes through the mutex.
type Session struct {
	ID string

	mu           sync.Mutex
	location     LocationState
	drivers      DriverState
	flow         *entity.RideFlow
	verification *entity.Verification

	// driverGen rises on every driver-list replacement so responses that
	// resolve after newer state has superseded them can be discarded.
	driverGen uint64

	pendingSignUp *PendingSignUp
	account       *Account

	permissionDenied bool
	lastSeen         time.Time
}

// PendingSignUp carries the data the verification step needs to finish
// account creation: the provider attempt handle plus the profile fields
// collected on the sign-up form.
type PendingSignUp struct {
	AttemptID string
	Name      string
	Email     string
}

// Account is the activated identity session.
type Account struct {
	ProviderSessionID string
	UserID            string
}

func New(id string) *Session {
	return &Session{
		ID:           id,
		flow:         entity.NewRideFlow(),
		verification: entity.NewVerification(),
		lastSeen:     time.Now(),
	}
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

// SetUserLocation overwrites the current user location; the destination is
// untouched.
func (s *Session) SetUserLocation(loc geo.NamedLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location.SetUserLocation(loc)
	s.touch()
}

func (s *Session) SetDestinationLocation(loc geo.NamedLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location.SetDestinationLocation(loc)
	s.touch()
}

func (s *Session) UserLocation() *geo.NamedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location.UserLocation()
}

func (s *Session) DestinationLocation() *geo.NamedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location.DestinationLocation()
}

// Points returns the user and destination coordinates for viewport framing.
func (s *Session) Points() (user, destination *geo.GeoPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location.UserPoint(), s.location.DestinationPoint()
}

// DriverGeneration returns the marker used to detect stale driver fetches.
func (s *Session) DriverGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driverGen
}

// SetDrivers replaces the marker list if gen still matches the generation the
// caller observed before its fetch. It reports whether the write was applied;
// a false return means newer state superseded the response and it was
// discarded.
func (s *Session) SetDrivers(markers []entity.MarkerData, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.driverGen {
		return false
	}
	s.drivers.SetDrivers(markers)
	s.driverGen++
	s.touch()
	return true
}

// ReplaceDrivers swaps the marker list unconditionally (enrichment rewrites
// the same list in place, last write wins).
func (s *Session) ReplaceDrivers(markers []entity.MarkerData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers.SetDrivers(markers)
	s.touch()
}

func (s *Session) SetSelectedDriver(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers.SetSelectedDriver(id)
	s.touch()
}

func (s *Session) Drivers() []entity.MarkerData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.Drivers()
}

func (s *Session) SelectedDriver() (entity.MarkerData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers.SelectedDriver()
}

// AdvanceFlow moves the ride flow one step forward, gated on this session's
// own state.
func (s *Session) AdvanceFlow() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.flow.Advance(gates{location: &s.location, drivers: &s.drivers})
}

func (s *Session) BackFlow(canPop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.Back(canPop)
	s.touch()
}

func (s *Session) FlowStep() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow.StepName()
}

func (s *Session) SetPendingSignUp(p PendingSignUp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingSignUp = &p
	s.touch()
}

func (s *Session) PendingSignUp() *PendingSignUp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingSignUp
}

// Activate marks the identity session active. Callers must have persisted the
// profile mirror first; a reader of an activated session may assume the
// profile exists.
func (s *Session) Activate(acc Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &acc
	s.pendingSignUp = nil
	s.touch()
}

func (s *Session) Account() *Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// ClearAccount drops the account binding on sign-out. Location, drivers and
// the flow step stay; the session keeps serving the signed-out app.
func (s *Session) ClearAccount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.touch()
}

// Verification returns a snapshot of the verification state.
func (s *Session) Verification() entity.Verification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.verification
}

func (s *Session) MarkVerificationPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification.MarkPending()
	s.touch()
}

func (s *Session) SetVerificationCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification.SetCode(code)
	s.touch()
}

func (s *Session) CanSubmitVerification() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verification.CanSubmit()
}

func (s *Session) BeginVerificationAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification.BeginAttempt()
	s.touch()
}

func (s *Session) FailVerification(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification.Fail(msg)
	s.touch()
}

func (s *Session) ResetVerification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verification.Reset()
	s.touch()
}

// MarkPermissionDenied records that the device refused location access; a
// terminal, session-scoped degraded state (the map stays hidden, nothing
// crashes).
func (s *Session) MarkPermissionDenied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissionDenied = true
	s.touch()
}

func (s *Session) PermissionDenied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permissionDenied
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// gates adapts the state containers to the flow's gating reads.
type gates struct {
	location *LocationState
	drivers  *DriverState
}

func (g gates) DestinationSet() bool {
	return g.location.DestinationLocation() != nil
}

func (g gates) DriverSelected() bool {
	return g.drivers.SelectedDriverID() != nil
}
