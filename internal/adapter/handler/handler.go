package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/services"
)

// Handler exposes the booking flow to a local UI shell.
type Handler struct {
	session  *services.SessionManager
	catalog  *services.EventCatalog
	registry *services.SelectionRegistry
	checkout *services.CheckoutService
	ticks    *tickHub
	logger   *slog.Logger
	now      func() time.Time
}

func NewHandler(session *services.SessionManager, catalog *services.EventCatalog, registry *services.SelectionRegistry, checkout *services.CheckoutService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		session:  session,
		catalog:  catalog,
		registry: registry,
		checkout: checkout,
		ticks:    newTickHub(),
		logger:   logger,
		now:      time.Now,
	}
}

type errorView struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := domain.AsAppError(err)
	status := statusFor(appErr)

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	}

	respondJSON(w, status, errorView{Error: appErr.Message, Kind: appErr.Kind})
}

func statusFor(err *domain.AppError) int {
	switch err.Kind {
	case domain.KindValidation:
		if errors.Is(err, domain.ErrOperationInFlight) {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindNetwork, domain.KindServer:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func eventIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.KindValidation, "invalid event id", err)
	}

	return id, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorView{Error: "invalid json body", Kind: domain.KindValidation})
		return
	}

	if err := h.session.Login(r.Context(), req.Username, req.Password); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout handles POST /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.registry.CloseAll()
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents handles GET /api/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalog.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

type eventView struct {
	Event  *domain.EventDetail `json:"event"`
	Resume *domain.Hold        `json:"resume,omitempty"`
}

// GetEvent handles GET /api/events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	detail, resume, err := h.catalog.Open(r.Context(), eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, eventView{Event: detail, Resume: resume})
}

// ListReceipts handles GET /api/receipts
func (h *Handler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	receipts, err := h.checkout.Receipts(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if receipts == nil {
		receipts = []domain.Receipt{}
	}

	respondJSON(w, http.StatusOK, receipts)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   h.now().Format(time.RFC3339),
	})
}
