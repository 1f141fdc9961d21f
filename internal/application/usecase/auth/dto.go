package auth

type SignUpInput struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type SignUpOutput struct {
	VerificationPhase string `json:"verification_phase"`
}

type VerifyInput struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

type VerifyOutput struct {
	VerificationPhase string `json:"verification_phase"`
	Error             string `json:"error,omitempty"`
	UserID            string `json:"user_id,omitempty"`
}

type SignInInput struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type SignInOutput struct {
	Status string `json:"status"`
	UserID string `json:"user_id,omitempty"`
}

type SignOutInput struct {
	SessionID string `json:"session_id"`
}
