package services

import (
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type passengerName struct {
	first string
	last  string
}

// PassengerForm collects one first and last name per held seat.
type PassengerForm struct {
	hold domain.Hold

	mu    sync.Mutex
	names map[domain.SeatKey]passengerName
}

func NewPassengerForm(hold domain.Hold) *PassengerForm {
	names := make(map[domain.SeatKey]passengerName, len(hold.Seats))
	for _, k := range hold.Seats {
		names[k] = passengerName{}
	}

	return &PassengerForm{hold: hold, names: names}
}

func (f *PassengerForm) Hold() domain.Hold {
	return f.hold
}

// SetName records the passenger for a held seat. Seats outside the hold are
// rejected.
func (f *PassengerForm) SetName(seat domain.SeatKey, first, last string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.names[seat]; !ok {
		return domain.NewError(domain.KindValidation, "seat "+seat.String()+" is not part of the hold", nil)
	}

	f.names[seat] = passengerName{first: strings.TrimSpace(first), last: strings.TrimSpace(last)}
	return nil
}

// Submit builds the sale request. It refuses when any name is missing or the
// local countdown says the hold is over.
func (f *PassengerForm) Submit(now time.Time) (*domain.SaleRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.hold.ExpiresAt != nil && f.hold.Remaining(now) <= 0 {
		return nil, domain.Validation(domain.ErrHoldExpired).WithOp("names")
	}

	req := &domain.SaleRequest{EventID: f.hold.EventID}
	for _, k := range f.hold.Seats {
		n := f.names[k]
		if n.first == "" || n.last == "" {
			return nil, domain.Validation(domain.ErrIncompleteNames).WithOp("names")
		}

		req.Seats = append(req.Seats, domain.SaleSeat{
			Row:       k.Row,
			Column:    k.Column,
			FirstName: n.first,
			LastName:  n.last,
		})
	}

	if err := validate.Struct(req); err != nil {
		return nil, domain.NewError(domain.KindValidation, "invalid passenger data", err).WithOp("names")
	}

	return req, nil
}
