package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

func TestParseSeatStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   domain.SeatStatus
		wantOK bool
	}{
		{raw: "LIBRE", want: domain.SeatFree, wantOK: true},
		{raw: "OCUPADO", want: domain.SeatOccupied, wantOK: true},
		{raw: "BLOQUEADO", want: domain.SeatBlocked, wantOK: true},
		{raw: "VENDIDO", want: domain.SeatBlocked, wantOK: false},
		{raw: "", want: domain.SeatBlocked, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := domain.ParseSeatStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSeatMapComplete_FillsMissingSeats(t *testing.T) {
	m := domain.SeatMap{
		EventID: 7,
		Seats: []domain.Seat{
			{Row: "1", Column: 1, Status: domain.SeatOccupied},
			{Row: "2", Column: 2, Status: domain.SeatBlocked},
		},
	}

	got := m.Complete(3, 2)

	require.Len(t, got.Seats, 6)
	assert.Equal(t, int64(7), got.EventID)

	want := []domain.Seat{
		{Row: "1", Column: 1, Status: domain.SeatOccupied},
		{Row: "1", Column: 2, Status: domain.SeatFree},
		{Row: "2", Column: 1, Status: domain.SeatFree},
		{Row: "2", Column: 2, Status: domain.SeatBlocked},
		{Row: "3", Column: 1, Status: domain.SeatFree},
		{Row: "3", Column: 2, Status: domain.SeatFree},
	}
	assert.Equal(t, want, got.Seats)
}

func TestSeatMapComplete_EmptyMapBecomesFullGrid(t *testing.T) {
	got := domain.SeatMap{EventID: 1}.Complete(2, 3)

	require.Len(t, got.Seats, 6)
	for _, s := range got.Seats {
		assert.True(t, s.IsFree(), "seat %s should be free", s.Key())
	}
}

func TestSeatMapComplete_NoChange(t *testing.T) {
	full := domain.SeatMap{Seats: []domain.Seat{
		{Row: "1", Column: 1, Status: domain.SeatFree},
		{Row: "1", Column: 2, Status: domain.SeatOccupied},
	}}

	tests := []struct {
		name    string
		rows    int
		columns int
	}{
		{name: "unknown layout", rows: 0, columns: 0},
		{name: "negative rows", rows: -1, columns: 4},
		{name: "already complete", rows: 1, columns: 2},
		{name: "more seats than layout", rows: 1, columns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, full, full.Complete(tt.rows, tt.columns))
		})
	}
}

func TestSeatMapComplete_KeepsSeatsOutsideGrid(t *testing.T) {
	m := domain.SeatMap{Seats: []domain.Seat{
		{Row: "A", Column: 1, Status: domain.SeatOccupied},
	}}

	got := m.Complete(2, 2)

	require.Len(t, got.Seats, 5)
	assert.Equal(t, domain.Seat{Row: "A", Column: 1, Status: domain.SeatOccupied}, got.Seats[4])
}

func TestSeatMapSeat(t *testing.T) {
	m := domain.SeatMap{Seats: []domain.Seat{{Row: "3", Column: 4, Status: domain.SeatOccupied}}}

	s, ok := m.Seat(domain.SeatKey{Row: "3", Column: 4})
	assert.True(t, ok)
	assert.Equal(t, domain.SeatOccupied, s.Status)

	_, ok = m.Seat(domain.SeatKey{Row: "3", Column: 5})
	assert.False(t, ok)
}

func TestSeatKeyString(t *testing.T) {
	assert.Equal(t, "B-12", domain.SeatKey{Row: "B", Column: 12}.String())
}
