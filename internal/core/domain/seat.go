package domain

import (
	"fmt"
	"strconv"
)

type SeatStatus string

const (
	SeatFree     SeatStatus = "LIBRE"
	SeatOccupied SeatStatus = "OCUPADO"
	SeatBlocked  SeatStatus = "BLOQUEADO"
)

func ParseSeatStatus(raw string) (SeatStatus, bool) {
	switch s := SeatStatus(raw); s {
	case SeatFree, SeatOccupied, SeatBlocked:
		return s, true
	}

	return SeatBlocked, false
}

// SeatKey identifies a seat inside one seat map. Rows are labels, not numbers.
type SeatKey struct {
	Row    string `json:"row"`
	Column int    `json:"column"`
}

func (k SeatKey) String() string {
	return fmt.Sprintf("%s-%d", k.Row, k.Column)
}

type Seat struct {
	Row      string     `json:"row"`
	Column   int        `json:"column"`
	Status   SeatStatus `json:"status"`
	Selected bool       `json:"selected"`
}

func (s Seat) Key() SeatKey {
	return SeatKey{Row: s.Row, Column: s.Column}
}

func (s Seat) IsFree() bool {
	return s.Status == SeatFree
}

type SeatMap struct {
	EventID int64  `json:"event_id"`
	Seats   []Seat `json:"seats"`
}

func (m SeatMap) Seat(key SeatKey) (Seat, bool) {
	for _, s := range m.Seats {
		if s.Key() == key {
			return s, true
		}
	}

	return Seat{}, false
}

// Complete fills the rows x columns grid with free seats wherever the backend
// omitted an entry. Returned entries keep their original values; entries that
// fall outside the grid are appended after it.
func (m SeatMap) Complete(rows, columns int) SeatMap {
	expected := rows * columns
	if rows <= 0 || columns <= 0 || len(m.Seats) >= expected {
		return m
	}

	byKey := make(map[SeatKey]Seat, len(m.Seats))
	for _, s := range m.Seats {
		byKey[s.Key()] = s
	}

	seats := make([]Seat, 0, expected)
	used := make(map[SeatKey]bool, len(m.Seats))

	for r := 1; r <= rows; r++ {
		label := strconv.Itoa(r)
		for c := 1; c <= columns; c++ {
			key := SeatKey{Row: label, Column: c}
			if existing, ok := byKey[key]; ok {
				seats = append(seats, existing)
				used[key] = true
				continue
			}

			seats = append(seats, Seat{Row: label, Column: c, Status: SeatFree})
		}
	}

	for _, s := range m.Seats {
		if !used[s.Key()] {
			seats = append(seats, s)
			used[s.Key()] = true
		}
	}

	return SeatMap{EventID: m.EventID, Seats: seats}
}
