package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/services"
)

type selectionView struct {
	EventID          int64               `json:"event_id"`
	Event            *domain.EventDetail `json:"event,omitempty"`
	Seats            []domain.Seat       `json:"seats"`
	Selected         []domain.SeatKey    `json:"selected"`
	MaxSeats         int                 `json:"max_seats"`
	HoldExpiry       *time.Time          `json:"hold_expiry,omitempty"`
	RemainingSeconds *int64              `json:"remaining_seconds,omitempty"`
	IsLoading        bool                `json:"is_loading"`
	IsBlocking       bool                `json:"is_blocking"`
	Error            *errorView          `json:"error,omitempty"`
}

func newSelectionView(s services.SelectionState, now time.Time) selectionView {
	v := selectionView{
		EventID:    s.EventID,
		Event:      s.Event,
		Seats:      s.Seats(),
		Selected:   s.SelectedSeats(),
		MaxSeats:   domain.MaxSeatsPerSelection,
		HoldExpiry: s.HoldExpiry,
		IsLoading:  s.IsLoading,
		IsBlocking: s.IsBlocking,
	}

	if v.Seats == nil {
		v.Seats = []domain.Seat{}
	}

	if s.HoldExpiry != nil {
		hold := domain.Hold{ExpiresAt: s.HoldExpiry}
		remaining := int64(hold.Remaining(now) / time.Second)
		v.RemainingSeconds = &remaining
	}

	if s.Err != nil {
		v.Error = &errorView{Error: s.Err.Message, Kind: s.Err.Kind}
	}

	return v
}

// LoadSelection handles POST /api/events/{id}/selection
func (h *Handler) LoadSelection(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	coordinator := h.registry.Open(eventID)
	if err := coordinator.Load(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, ok := coordinator.Hold(); ok {
		h.startCountdown(eventID)
	}

	respondJSON(w, http.StatusOK, newSelectionView(coordinator.State(), h.now()))
}

// GetSelection handles GET /api/events/{id}/selection
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	coordinator, ok := h.registry.Get(eventID)
	if !ok {
		h.respondError(w, r, domain.NewError(domain.KindNotFound, "selection session not found", nil))
		return
	}

	respondJSON(w, http.StatusOK, newSelectionView(coordinator.State(), h.now()))
}

type toggleRequest struct {
	Row    string `json:"row"`
	Column int    `json:"column"`
}

// ToggleSeat handles POST /api/events/{id}/selection/toggle
func (h *Handler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	coordinator, ok := h.registry.Get(eventID)
	if !ok {
		h.respondError(w, r, domain.NewError(domain.KindNotFound, "selection session not found", nil))
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == "" || req.Column <= 0 {
		respondJSON(w, http.StatusBadRequest, errorView{Error: "row and column are required", Kind: domain.KindValidation})
		return
	}

	state, err := coordinator.ToggleMapSeat(req.Row, req.Column)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newSelectionView(state, h.now()))
}

// BlockSeats handles POST /api/events/{id}/selection/block
func (h *Handler) BlockSeats(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	coordinator, ok := h.registry.Get(eventID)
	if !ok {
		h.respondError(w, r, domain.NewError(domain.KindNotFound, "selection session not found", nil))
		return
	}

	hold, err := coordinator.BlockAndContinue(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if hold.ExpiresAt != nil {
		h.startCountdown(eventID)
	}

	respondJSON(w, http.StatusOK, hold)
}

// LeaveSelection handles DELETE /api/events/{id}/selection
func (h *Handler) LeaveSelection(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.registry.Close(eventID)
	h.ticks.closeEvent(eventID)
	w.WriteHeader(http.StatusNoContent)
}

type passengerRequest struct {
	Row       string `json:"row"`
	Column    int    `json:"column"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type saleRequest struct {
	Passengers []passengerRequest `json:"passengers"`
}

// ProcessSale handles POST /api/events/{id}/sale
func (h *Handler) ProcessSale(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorView{Error: "invalid json body", Kind: domain.KindValidation})
		return
	}

	hold, err := h.currentHold(r, eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	form := services.NewPassengerForm(*hold)
	for _, p := range req.Passengers {
		if err := form.SetName(domain.SeatKey{Row: p.Row, Column: p.Column}, p.FirstName, p.LastName); err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	sale, err := form.Submit(h.now())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.checkout.ProcessSale(r.Context(), *sale)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.registry.Close(eventID)
	h.ticks.closeEvent(eventID)

	respondJSON(w, http.StatusOK, result)
}

// currentHold prefers the live session and falls back to whatever the
// server still holds for the user.
func (h *Handler) currentHold(r *http.Request, eventID int64) (*domain.Hold, error) {
	if coordinator, ok := h.registry.Get(eventID); ok {
		if hold, ok := coordinator.Hold(); ok {
			return hold, nil
		}
	}

	_, hold, err := h.catalog.Open(r.Context(), eventID)
	if err != nil {
		return nil, err
	}
	if hold == nil {
		return nil, domain.Validation(domain.ErrEmptySelection)
	}

	return hold, nil
}

func (h *Handler) startCountdown(eventID int64) {
	err := h.registry.StartCountdown(eventID, func(remaining int64) {
		h.ticks.publish(eventID, remaining)
	})
	if err != nil {
		h.logger.Warn("countdown not started", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
	}
}
