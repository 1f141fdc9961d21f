package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gocabs/rideflow/internal/application/usecase/location"
	"github.com/gocabs/rideflow/internal/application/usecase/place"
	"github.com/gocabs/rideflow/internal/application/usecase/ride"
	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/session"
	"github.com/gocabs/rideflow/pkg/logger"
)

// SessionHandler is the ride-hailing surface one app session talks to.
type SessionHandler struct {
	Sessions    *session.Store
	Resolve     location.ResolveUseCase
	Destination location.DestinationUseCase
	Search      place.SearchUseCase
	Refresh     ride.RefreshUseCase
	Enrich      ride.EnrichUseCase
	Book        ride.BookUseCase
	History     ride.HistoryUseCase
	Logger      logger.Logger
}

type sessionCreatedResponse struct {
	SessionID string        `json:"session_id"`
	FlowStep  string        `json:"flow_step"`
	Region    entity.Region `json:"region"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Create()
	respondJSON(w, http.StatusCreated, sessionCreatedResponse{
		SessionID: sess.ID,
		FlowStep:  sess.FlowStep(),
		Region:    entity.DefaultRegion(),
	})
}

type stateResponse struct {
	FlowStep          string              `json:"flow_step"`
	PermissionDenied  bool                `json:"permission_denied"`
	UserAddress       string              `json:"user_address,omitempty"`
	DestAddress       string              `json:"destination_address,omitempty"`
	Markers           []entity.MarkerData `json:"markers"`
	SelectedDriverID  *int                `json:"selected_driver_id,omitempty"`
	Region            entity.Region       `json:"region"`
	VerificationPhase string              `json:"verification_phase"`
	SignedIn          bool                `json:"signed_in"`
}

func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}

	userPt, destPt := sess.Points()
	resp := stateResponse{
		FlowStep:          sess.FlowStep(),
		PermissionDenied:  sess.PermissionDenied(),
		Markers:           sess.Drivers(),
		Region:            entity.ComputeRegion(userPt, destPt),
		VerificationPhase: string(sess.Verification().Phase),
		SignedIn:          sess.Account() != nil,
	}
	if resp.Markers == nil {
		resp.Markers = []entity.MarkerData{}
	}
	if loc := sess.UserLocation(); loc != nil {
		resp.UserAddress = loc.Address
	}
	if loc := sess.DestinationLocation(); loc != nil {
		resp.DestAddress = loc.Address
	}
	if driver, ok := sess.SelectedDriver(); ok {
		id := driver.ID
		resp.SelectedDriverID = &id
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *SessionHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var input location.ResolveInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.SessionID = chi.URLParam(r, "sessionID")

	out, err := h.Resolve.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *SessionHandler) SetDestination(w http.ResponseWriter, r *http.Request) {
	var input location.DestinationInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.SessionID = chi.URLParam(r, "sessionID")

	out, err := h.Destination.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *SessionHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.Search.Execute(r.Context(), place.SearchInput{
		Text:  r.URL.Query().Get("q"),
		Limit: limit,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// RefreshDrivers rebuilds the marker list synchronously and kicks off the
// ETA/price enrichment in the background. Markers render immediately; the
// enriched list lands on a later state read.
func (h *SessionHandler) RefreshDrivers(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	out, err := h.Refresh.Execute(r.Context(), ride.RefreshInput{SessionID: sessionID})
	if err != nil {
		respondError(w, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.Enrich.Execute(ctx, ride.EnrichInput{SessionID: sessionID}); err != nil {
			h.Logger.Warn(ctx, "marker enrichment failed",
				logger.String("session_id", sessionID),
				logger.WithError(err),
			)
		}
	}()

	respondJSON(w, http.StatusOK, out)
}

type selectDriverRequest struct {
	DriverID int `json:"driver_id"`
}

func (h *SessionHandler) SelectDriver(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req selectDriverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess.SetSelectedDriver(req.DriverID)

	resp := map[string]any{"selected_driver_id": nil}
	if driver, ok := sess.SelectedDriver(); ok {
		resp["selected_driver_id"] = driver.ID
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *SessionHandler) AdvanceFlow(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := sess.AdvanceFlow(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"flow_step": sess.FlowStep()})
}

type backRequest struct {
	CanPop bool `json:"can_pop"`
}

func (h *SessionHandler) BackFlow(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req backRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess.BackFlow(req.CanPop)
	respondJSON(w, http.StatusOK, map[string]string{"flow_step": sess.FlowStep()})
}

func (h *SessionHandler) BookRide(w http.ResponseWriter, r *http.Request) {
	out, err := h.Book.Execute(r.Context(), ride.BookInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, out)
}

func (h *SessionHandler) RecentRides(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.History.Execute(r.Context(), ride.HistoryInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Limit:     limit,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
