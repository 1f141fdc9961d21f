package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gocabs/rideflow/internal/application/usecase/auth"
	"github.com/gocabs/rideflow/internal/application/usecase/location"
	"github.com/gocabs/rideflow/internal/application/usecase/ride"
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/internal/session"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps domain sentinels to HTTP status codes. Unknown errors
// become opaque 500s so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, entity.ErrInvalidStateTransition),
		errors.Is(err, entity.ErrDestinationNotSet),
		errors.Is(err, entity.ErrNoDriverSelected),
		errors.Is(err, auth.ErrVerificationNotActive),
		errors.Is(err, auth.ErrNoPendingSignUp):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, geo.ErrLatitudeOutOfRange),
		errors.Is(err, geo.ErrLongitudeOutOfRange),
		errors.Is(err, location.ErrCoordinatesRequired),
		errors.Is(err, auth.ErrEmailRequired),
		errors.Is(err, auth.ErrPasswordRequired),
		errors.Is(err, auth.ErrCodeRequired):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, location.ErrPermissionDenied):
		respondJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, ride.ErrNotSignedIn):
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
