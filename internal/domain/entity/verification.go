package entity

// VerificationPhase is the account-verification sub-state during sign-up.
type VerificationPhase string

const (
	VerificationDefault VerificationPhase = "DEFAULT"
	VerificationPending VerificationPhase = "PENDING"
	VerificationFailed  VerificationPhase = "FAILED"
)

// Verification is the per-sign-up-attempt state machine. A provider failure
// while initiating keeps the phase at Default (the error is a one-shot
// notification, never stored here). Every code rejection clears the code so
// the user re-enters a fresh one.
type Verification struct {
	Phase VerificationPhase
	Code  string
	Error string
}

func NewVerification() *Verification {
	return &Verification{Phase: VerificationDefault}
}

// MarkPending records that the provider accepted the sign-up and a code has
// been sent out.
func (v *Verification) MarkPending() {
	v.Phase = VerificationPending
	v.Code = ""
	v.Error = ""
}

// SetCode stores the code the user typed. Editing the code after a failure
// implicitly re-arms the attempt; the stale error is dropped on resubmit.
func (v *Verification) SetCode(code string) {
	v.Code = code
}

// CanSubmit reports whether a code submission is meaningful in this phase.
func (v *Verification) CanSubmit() bool {
	return v.Phase == VerificationPending || v.Phase == VerificationFailed
}

// BeginAttempt clears the previous error before a verification round-trip.
func (v *Verification) BeginAttempt() {
	v.Error = ""
}

// Fail moves to Failed with a captured message and a cleared code.
func (v *Verification) Fail(msg string) {
	v.Phase = VerificationFailed
	v.Error = msg
	v.Code = ""
}

// Reset returns to the pristine state after successful activation or on
// teardown.
func (v *Verification) Reset() {
	v.Phase = VerificationDefault
	v.Code = ""
	v.Error = ""
}
