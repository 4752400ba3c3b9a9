package domain

import "time"

// MaxSeatsPerSelection is the client-side cap on seats in one selection.
const MaxSeatsPerSelection = 4

type SelectedSeat struct {
	Row       string `json:"row"`
	Column    int    `json:"column"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (s SelectedSeat) Key() SeatKey {
	return SeatKey{Row: s.Row, Column: s.Column}
}

// Selection is the server's record of what the current user has picked for
// an event. ExpiresAt is nil until the seats are blocked.
type Selection struct {
	EventID   int64          `json:"event_id"`
	Seats     []SelectedSeat `json:"seats"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

func (s *Selection) IsEmpty() bool {
	return s == nil || len(s.Seats) == 0
}

func (s *Selection) Keys() []SeatKey {
	if s == nil {
		return nil
	}

	keys := make([]SeatKey, 0, len(s.Seats))
	for _, seat := range s.Seats {
		keys = append(keys, seat.Key())
	}

	return keys
}

type BlockResult struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Seats   []SeatKey `json:"seats,omitempty"`
}

// Hold is the client's view of a server-granted seat reservation. ExpiresAt
// is an estimate; the server decides whether the hold is still valid.
type Hold struct {
	EventID   int64      `json:"event_id"`
	Seats     []SeatKey  `json:"seats"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h Hold) Remaining(now time.Time) time.Duration {
	if h.ExpiresAt == nil {
		return 0
	}

	if d := h.ExpiresAt.Sub(now); d > 0 {
		return d
	}

	return 0
}
