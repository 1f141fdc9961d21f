package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gocabs/rideflow/internal/application/usecase/auth"
	"github.com/gocabs/rideflow/internal/session"
)

type AuthHandler struct {
	SignUp  auth.SignUpUseCase
	Verify  auth.VerifyUseCase
	SignIn  auth.SignInUseCase
	SignOut auth.SignOutUseCase
}

// respondProviderError keeps identity-provider rejections user facing: their
// first message is meant for the screen, not an opaque 500.
func respondProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, auth.ErrEmailRequired),
		errors.Is(err, auth.ErrPasswordRequired),
		errors.Is(err, auth.ErrCodeRequired),
		errors.Is(err, auth.ErrVerificationNotActive),
		errors.Is(err, auth.ErrNoPendingSignUp):
		respondError(w, err)
	default:
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	}
}

func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var input auth.SignUpInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.SessionID = chi.URLParam(r, "sessionID")

	out, err := h.SignUp.Execute(r.Context(), input)
	if err != nil {
		respondProviderError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, out)
}

func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var input auth.VerifyInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.SessionID = chi.URLParam(r, "sessionID")

	out, err := h.Verify.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var input auth.SignInInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.SessionID = chi.URLParam(r, "sessionID")

	out, err := h.SignIn.Execute(r.Context(), input)
	if err != nil {
		respondProviderError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	err := h.SignOut.Execute(r.Context(), auth.SignOutInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
