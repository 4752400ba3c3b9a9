package services

import (
	"time"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

// SelectionState is an immutable snapshot of one event's seat selection.
// Every change goes through reduce and produces a new value.
type SelectionState struct {
	EventID    int64               `json:"event_id"`
	Event      *domain.EventDetail `json:"event,omitempty"`
	SeatMap    *domain.SeatMap     `json:"seat_map,omitempty"`
	HoldExpiry *time.Time          `json:"hold_expiry,omitempty"`
	IsLoading  bool                `json:"is_loading"`
	IsBlocking bool                `json:"is_blocking"`
	Err        *domain.AppError    `json:"-"`

	selected []domain.SeatKey
}

func (s SelectionState) SelectedSeats() []domain.SeatKey {
	out := make([]domain.SeatKey, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s SelectionState) SelectedCount() int {
	return len(s.selected)
}

func (s SelectionState) IsSelected(key domain.SeatKey) bool {
	for _, k := range s.selected {
		if k == key {
			return true
		}
	}

	return false
}

// Seats returns the seat map with the Selected flag reflecting the selection.
func (s SelectionState) Seats() []domain.Seat {
	if s.SeatMap == nil {
		return nil
	}

	seats := make([]domain.Seat, len(s.SeatMap.Seats))
	for i, seat := range s.SeatMap.Seats {
		seat.Selected = s.IsSelected(seat.Key())
		seats[i] = seat
	}

	return seats
}

type stateEvent interface {
	apply(SelectionState) SelectionState
}

type loadStarted struct{}

type loadSucceeded struct {
	event     *domain.EventDetail
	seatMap   *domain.SeatMap
	selection *domain.Selection
}

type loadFailed struct{ err *domain.AppError }

type seatToggled struct {
	key    domain.SeatKey
	status domain.SeatStatus
}

type blockStarted struct{}

type blockSucceeded struct {
	seats  []domain.SeatKey
	expiry *time.Time
}

type blockFailed struct{ err *domain.AppError }

type holdExpired struct{}

func reduce(s SelectionState, ev stateEvent) SelectionState {
	return ev.apply(s)
}

func (loadStarted) apply(s SelectionState) SelectionState {
	s.IsLoading = true
	s.Err = nil
	return s
}

func (e loadSucceeded) apply(s SelectionState) SelectionState {
	s.IsLoading = false
	s.Event = e.event
	s.SeatMap = e.seatMap
	s.Err = nil

	if s.SeatMap == nil || len(s.SeatMap.Seats) == 0 {
		s.Err = domain.Validation(domain.ErrNoSeatsAvailable)
	}

	s.selected = nil
	s.HoldExpiry = nil
	if !e.selection.IsEmpty() {
		s.selected = e.selection.Keys()
		s.HoldExpiry = e.selection.ExpiresAt
	}

	return s
}

func (e loadFailed) apply(s SelectionState) SelectionState {
	s.IsLoading = false
	s.Err = e.err
	return s
}

func (e seatToggled) apply(s SelectionState) SelectionState {
	selected := s.IsSelected(e.key)
	if !selected && e.status != domain.SeatFree {
		return s
	}

	if !selected && len(s.selected) >= domain.MaxSeatsPerSelection {
		return s
	}

	next := make([]domain.SeatKey, 0, len(s.selected)+1)
	if selected {
		for _, k := range s.selected {
			if k != e.key {
				next = append(next, k)
			}
		}
	} else {
		next = append(next, s.selected...)
		next = append(next, e.key)
	}

	s.selected = next
	s.Err = nil
	return s
}

func (blockStarted) apply(s SelectionState) SelectionState {
	s.IsBlocking = true
	s.Err = nil
	return s
}

func (e blockSucceeded) apply(s SelectionState) SelectionState {
	s.IsBlocking = false
	s.Err = nil
	s.selected = append([]domain.SeatKey(nil), e.seats...)
	s.HoldExpiry = e.expiry
	return s
}

func (e blockFailed) apply(s SelectionState) SelectionState {
	s.IsBlocking = false
	s.Err = e.err
	return s
}

func (holdExpired) apply(s SelectionState) SelectionState {
	s.selected = nil
	s.HoldExpiry = nil
	s.Err = domain.Validation(domain.ErrHoldExpired)
	return s
}
