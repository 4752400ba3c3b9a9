package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports"
)

type selectionSession struct {
	coordinator *SeatSelectionCoordinator
	cancel      context.CancelFunc
	done        chan struct{}
}

// SelectionRegistry keeps one coordinator per event viewing session and the
// countdown bound to it.
type SelectionRegistry struct {
	gateway   ports.BookingGateway
	logger    *slog.Logger
	countdown []CountdownOption

	mu       sync.Mutex
	sessions map[int64]*selectionSession
}

func NewSelectionRegistry(gateway ports.BookingGateway, logger *slog.Logger, opts ...CountdownOption) *SelectionRegistry {
	if logger == nil {
		logger = slog.Default()
	}

	return &SelectionRegistry{
		gateway:   gateway,
		logger:    logger,
		countdown: opts,
		sessions:  make(map[int64]*selectionSession),
	}
}

func (r *SelectionRegistry) Open(eventID int64) *SeatSelectionCoordinator {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[eventID]; ok {
		return s.coordinator
	}

	s := &selectionSession{coordinator: NewSeatSelectionCoordinator(r.gateway, eventID, r.logger)}
	r.sessions[eventID] = s
	return s.coordinator
}

func (r *SelectionRegistry) Get(eventID int64) (*SeatSelectionCoordinator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[eventID]
	if !ok {
		return nil, false
	}

	return s.coordinator, true
}

// StartCountdown runs the hold countdown for eventID in the background,
// replacing any countdown already running for it. onTick may be nil.
func (r *SelectionRegistry) StartCountdown(eventID int64, onTick func(int64)) error {
	r.mu.Lock()
	s, ok := r.sessions[eventID]
	if !ok {
		r.mu.Unlock()
		return domain.NewError(domain.KindNotFound, "selection session not found", nil)
	}
	r.stopCountdown(s)

	hold, ok := s.coordinator.Hold()
	if !ok {
		r.mu.Unlock()
		return domain.Validation(domain.ErrEmptySelection)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	r.mu.Unlock()

	countdown := NewHoldCountdown(*hold.ExpiresAt, onTick, func() {
		s.coordinator.Expire()
	}, r.countdown...)

	go func() {
		defer close(done)
		if err := countdown.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Warn("hold countdown stopped", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		}
	}()

	return nil
}

// stopCountdown must be called with r.mu held.
func (r *SelectionRegistry) stopCountdown(s *selectionSession) {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

// Close ends the viewing session for eventID and stops its countdown.
func (r *SelectionRegistry) Close(eventID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[eventID]
	if !ok {
		return
	}

	r.stopCountdown(s)
	s.coordinator.close()
	delete(r.sessions, eventID)
}

func (r *SelectionRegistry) CloseAll() {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Close(id)
	}
}
