package handler

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(h.logRequests)

	api := r.PathPrefix("/api").Subrouter()

	// Session
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)

	// Events
	api.HandleFunc("/events", h.ListEvents).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/events/{id}", h.GetEvent).Methods(http.MethodGet, http.MethodOptions)

	// Selection
	api.HandleFunc("/events/{id}/selection", h.LoadSelection).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/events/{id}/selection", h.GetSelection).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/selection", h.LeaveSelection).Methods(http.MethodDelete)
	api.HandleFunc("/events/{id}/selection/toggle", h.ToggleSeat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/events/{id}/selection/block", h.BlockSeats).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/events/{id}/selection/ws", h.StreamSelection)

	// Sales
	api.HandleFunc("/events/{id}/sale", h.ProcessSale).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/receipts", h.ListReceipts).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Hijack is required by the websocket upgrader.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
