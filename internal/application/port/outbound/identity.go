package outbound

import "context"

type SessionStatus string

const (
	SessionComplete   SessionStatus = "complete"
	SessionNeedsSteps SessionStatus = "needs_steps"
)

// SessionResult is the identity provider's answer to a sign-in or code
// verification attempt.
type SessionResult struct {
	Status    SessionStatus
	SessionID string
	UserID    string
}

// PendingVerification is returned by SignUp once the provider has sent out a
// verification code.
type PendingVerification struct {
	AttemptID string
}

// Identity is the opaque authentication provider. Provider errors carry a
// list of human-readable messages; implementations surface the FIRST message
// as the user-facing reason.
type Identity interface {
	SignIn(ctx context.Context, identifier, secret string) (SessionResult, error)
	SignUp(ctx context.Context, email, secret string) (PendingVerification, error)
	Verify(ctx context.Context, attemptID, code string) (SessionResult, error)
	SignOut(ctx context.Context, sessionID string) error
}
