package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports"
)

// SeatSelectionCoordinator owns the seat selection of one event and hands it
// over to a server-side hold. Use one instance per event.
type SeatSelectionCoordinator struct {
	gateway ports.BookingGateway
	eventID int64
	logger  *slog.Logger

	mu      sync.Mutex
	state   SelectionState
	subs    map[int]chan SelectionState
	nextSub int
}

func NewSeatSelectionCoordinator(gateway ports.BookingGateway, eventID int64, logger *slog.Logger) *SeatSelectionCoordinator {
	if logger == nil {
		logger = slog.Default()
	}

	return &SeatSelectionCoordinator{
		gateway: gateway,
		eventID: eventID,
		logger:  logger.With(slog.Int64("event_id", eventID)),
		state:   SelectionState{EventID: eventID},
		subs:    make(map[int]chan SelectionState),
	}
}

func (c *SeatSelectionCoordinator) EventID() int64 {
	return c.eventID
}

func (c *SeatSelectionCoordinator) State() SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe returns a channel that receives the current snapshot and every
// later one. Slow readers only see the latest snapshot.
func (c *SeatSelectionCoordinator) Subscribe() (<-chan SelectionState, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++

	ch := make(chan SelectionState, 1)
	ch <- c.state
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// dispatch must be called with c.mu held.
func (c *SeatSelectionCoordinator) dispatch(ev stateEvent) SelectionState {
	c.state = reduce(c.state, ev)

	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.state
	}

	return c.state
}

func (c *SeatSelectionCoordinator) send(ev stateEvent) SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(ev)
}

// Load fetches the event layout and seat map, fills layout gaps with free
// seats and resumes an active selection if the server still has one.
func (c *SeatSelectionCoordinator) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state.IsLoading || c.state.IsBlocking {
		c.mu.Unlock()
		return domain.Validation(domain.ErrOperationInFlight).WithOp("load")
	}
	c.dispatch(loadStarted{})
	c.mu.Unlock()

	detail, err := c.gateway.GetEventDetail(ctx, c.eventID)
	if err != nil {
		return c.failLoad(err)
	}
	if detail == nil {
		return c.failLoad(domain.NewError(domain.KindNotFound, "", nil))
	}

	seatMap, err := c.gateway.GetSeatMap(ctx, c.eventID)
	if err != nil {
		return c.failLoad(err)
	}

	if seatMap == nil {
		seatMap = &domain.SeatMap{EventID: c.eventID}
	}
	complete := seatMap.Complete(detail.Rows, detail.Columns)

	selection, err := c.gateway.GetCurrentSelection(ctx, c.eventID)
	if err != nil {
		c.logger.Warn("current selection lookup failed", slog.String("error", err.Error()))
		selection = nil
	}

	state := c.send(loadSucceeded{event: detail, seatMap: &complete, selection: selection})

	c.logger.Info("seat map loaded",
		slog.Int("seats", len(complete.Seats)),
		slog.Int("resumed", state.SelectedCount()),
	)

	return nil
}

func (c *SeatSelectionCoordinator) failLoad(err error) error {
	appErr := domain.AsAppError(err).WithOp("load")
	c.send(loadFailed{err: appErr})
	c.logger.Error("seat map load failed", slog.String("error", err.Error()))
	return appErr
}

// ToggleSeat selects or deselects a seat. Seats that are not free can only
// be deselected; a fifth seat is ignored. Toggles are ignored while a block
// request is in flight.
func (c *SeatSelectionCoordinator) ToggleSeat(row string, column int, status domain.SeatStatus) SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsBlocking {
		return c.state
	}

	return c.dispatch(seatToggled{key: domain.SeatKey{Row: row, Column: column}, status: status})
}

// ToggleMapSeat toggles a seat using the status the seat map reports for
// it. Seats missing from the map can only be released if already selected.
func (c *SeatSelectionCoordinator) ToggleMapSeat(row string, column int) (SelectionState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsBlocking {
		return c.state, nil
	}

	k := domain.SeatKey{Row: row, Column: column}
	if c.state.IsSelected(k) {
		return c.dispatch(seatToggled{key: k}), nil
	}

	if c.state.SeatMap == nil {
		return c.state, domain.NewError(domain.KindValidation, "seat map not loaded", nil).WithOp("toggle")
	}

	s, ok := c.state.SeatMap.Seat(k)
	if !ok {
		return c.state, domain.NewError(domain.KindValidation, "seat "+k.String()+" does not exist", nil).WithOp("toggle")
	}

	return c.dispatch(seatToggled{key: k, status: s.Status}), nil
}

// BlockAndContinue stores the selection on the server and asks it to hold
// the seats. Every call issues a fresh set of requests.
func (c *SeatSelectionCoordinator) BlockAndContinue(ctx context.Context) (*domain.Hold, error) {
	c.mu.Lock()
	if c.state.IsBlocking {
		c.mu.Unlock()
		return nil, domain.Validation(domain.ErrOperationInFlight).WithOp("block")
	}

	seats := c.state.SelectedSeats()
	if len(seats) == 0 {
		c.mu.Unlock()
		return nil, domain.Validation(domain.ErrEmptySelection).WithOp("block")
	}
	if len(seats) > domain.MaxSeatsPerSelection {
		c.mu.Unlock()
		return nil, domain.Validation(domain.ErrTooManySeats).WithOp("block")
	}

	c.dispatch(blockStarted{})
	c.mu.Unlock()

	if err := c.gateway.UpdateSelectedEvent(ctx, c.eventID); err != nil {
		return nil, c.failBlock(err)
	}

	uploads := make([]domain.SelectedSeat, 0, len(seats))
	for _, k := range seats {
		uploads = append(uploads, domain.SelectedSeat{Row: k.Row, Column: k.Column})
	}

	if err := c.gateway.UpdateSelectedSeats(ctx, uploads); err != nil {
		return nil, c.failBlock(err)
	}

	result, err := c.gateway.BlockSeats(ctx, c.eventID)
	if err != nil {
		return nil, c.failBlock(err)
	}

	if result == nil || !result.Success {
		var msg string
		if result != nil {
			msg = result.Message
		}

		appErr := domain.ValidationMessage(msg).WithOp("block")
		c.send(blockFailed{err: appErr})
		c.logger.Warn("seats not blocked", slog.String("message", appErr.Message))
		return nil, appErr
	}

	selection, err := c.gateway.GetCurrentSelection(ctx, c.eventID)
	if err != nil {
		return nil, c.failBlock(err)
	}

	hold := &domain.Hold{EventID: c.eventID, Seats: append([]domain.SeatKey(nil), seats...)}
	if selection != nil {
		hold.ExpiresAt = selection.ExpiresAt
	}

	c.send(blockSucceeded{seats: seats, expiry: hold.ExpiresAt})
	c.logger.Info("seats blocked", slog.Int("seats", len(seats)))

	return hold, nil
}

func (c *SeatSelectionCoordinator) failBlock(err error) error {
	appErr := domain.AsAppError(err).WithOp("block")
	c.send(blockFailed{err: appErr})
	c.logger.Error("block request failed", slog.String("error", err.Error()))
	return appErr
}

// Expire drops the selection once the local countdown reaches zero.
func (c *SeatSelectionCoordinator) Expire() SelectionState {
	c.logger.Info("seat hold expired locally")
	return c.send(holdExpired{})
}

// Hold returns the current hold, if the selection has been blocked.
func (c *SeatSelectionCoordinator) Hold() (*domain.Hold, bool) {
	s := c.State()
	if s.HoldExpiry == nil || s.SelectedCount() == 0 {
		return nil, false
	}

	return &domain.Hold{EventID: c.eventID, Seats: s.SelectedSeats(), ExpiresAt: s.HoldExpiry}, true
}

func (c *SeatSelectionCoordinator) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}
