package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports/mocks"
	"github.com/srgjo27/seatflow/internal/core/services"
)

const testEventID int64 = 42

func seat(row string, col int, status domain.SeatStatus) domain.Seat {
	return domain.Seat{Row: row, Column: col, Status: status}
}

func key(row string, col int) domain.SeatKey {
	return domain.SeatKey{Row: row, Column: col}
}

// loadedCoordinator returns a coordinator loaded with a 2x3 layout where 1-2
// is occupied and 2-3 is blocked.
func loadedCoordinator(t *testing.T, gw *mocks.BookingGateway, selection *domain.Selection) *services.SeatSelectionCoordinator {
	t.Helper()

	detail := &domain.EventDetail{ID: testEventID, Title: "Recital", Rows: 2, Columns: 3}
	seatMap := &domain.SeatMap{EventID: testEventID, Seats: []domain.Seat{
		seat("1", 2, domain.SeatOccupied),
		seat("2", 3, domain.SeatBlocked),
	}}

	gw.On("GetEventDetail", mock.Anything, testEventID).Return(detail, nil).Once()
	gw.On("GetSeatMap", mock.Anything, testEventID).Return(seatMap, nil).Once()
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(selection, nil).Once()

	c := services.NewSeatSelectionCoordinator(gw, testEventID, nil)
	require.NoError(t, c.Load(context.Background()))

	return c
}

func TestLoad_CompletesSeatMap(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	state := c.State()
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Err)
	require.NotNil(t, state.SeatMap)
	assert.Len(t, state.SeatMap.Seats, 6)
	assert.Equal(t, "Recital", state.Event.Title)
	assert.Zero(t, state.SelectedCount())

	s, ok := state.SeatMap.Seat(key("1", 2))
	require.True(t, ok)
	assert.Equal(t, domain.SeatOccupied, s.Status)

	s, ok = state.SeatMap.Seat(key("2", 1))
	require.True(t, ok)
	assert.Equal(t, domain.SeatFree, s.Status)
}

func TestLoad_ResumesServerSelection(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	expiry := time.Now().Add(5 * time.Minute)

	c := loadedCoordinator(t, gw, &domain.Selection{
		EventID:   testEventID,
		Seats:     []domain.SelectedSeat{{Row: "1", Column: 1}, {Row: "1", Column: 3}},
		ExpiresAt: &expiry,
	})

	state := c.State()
	assert.Equal(t, []domain.SeatKey{key("1", 1), key("1", 3)}, state.SelectedSeats())
	require.NotNil(t, state.HoldExpiry)
	assert.True(t, expiry.Equal(*state.HoldExpiry))

	hold, ok := c.Hold()
	require.True(t, ok)
	assert.Len(t, hold.Seats, 2)
}

func TestLoad_SelectionLookupFailureIsIgnored(t *testing.T) {
	gw := mocks.NewBookingGateway(t)

	gw.On("GetEventDetail", mock.Anything, testEventID).Return(&domain.EventDetail{ID: testEventID, Rows: 1, Columns: 2}, nil)
	gw.On("GetSeatMap", mock.Anything, testEventID).Return(&domain.SeatMap{EventID: testEventID}, nil)
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(nil, errors.New("HTTP 500"))

	c := services.NewSeatSelectionCoordinator(gw, testEventID, nil)
	err := c.Load(context.Background())

	assert.NoError(t, err)
	state := c.State()
	assert.Nil(t, state.Err)
	assert.Len(t, state.SeatMap.Seats, 2)
}

func TestLoad_EmptySeatMap(t *testing.T) {
	gw := mocks.NewBookingGateway(t)

	gw.On("GetEventDetail", mock.Anything, testEventID).Return(&domain.EventDetail{ID: testEventID}, nil)
	gw.On("GetSeatMap", mock.Anything, testEventID).Return(&domain.SeatMap{EventID: testEventID}, nil)
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(nil, nil)

	c := services.NewSeatSelectionCoordinator(gw, testEventID, nil)
	require.NoError(t, c.Load(context.Background()))

	state := c.State()
	require.NotNil(t, state.Err)
	assert.ErrorIs(t, state.Err, domain.ErrNoSeatsAvailable)
	assert.Equal(t, domain.KindValidation, state.Err.Kind)
}

func TestLoad_Failure(t *testing.T) {
	tests := []struct {
		name      string
		detailErr error
		mapErr    error
		kind      domain.ErrorKind
	}{
		{
			name:      "detail network error",
			detailErr: domain.NewError(domain.KindNetwork, "", nil),
			kind:      domain.KindNetwork,
		},
		{
			name:   "seat map not found",
			mapErr: domain.NewError(domain.KindNotFound, "", nil),
			kind:   domain.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := mocks.NewBookingGateway(t)

			if tt.detailErr != nil {
				gw.On("GetEventDetail", mock.Anything, testEventID).Return(nil, tt.detailErr)
			} else {
				gw.On("GetEventDetail", mock.Anything, testEventID).Return(&domain.EventDetail{ID: testEventID}, nil)
				gw.On("GetSeatMap", mock.Anything, testEventID).Return(nil, tt.mapErr)
			}

			c := services.NewSeatSelectionCoordinator(gw, testEventID, nil)
			err := c.Load(context.Background())

			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tt.kind))

			state := c.State()
			assert.False(t, state.IsLoading)
			require.NotNil(t, state.Err)
			assert.Equal(t, tt.kind, state.Err.Kind)
			assert.Equal(t, "load", state.Err.Op)
		})
	}
}

func TestToggleSeat_SelectAndDeselect(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	state := c.ToggleSeat("1", 1, domain.SeatFree)
	assert.True(t, state.IsSelected(key("1", 1)))
	assert.Equal(t, 1, state.SelectedCount())

	state = c.ToggleSeat("1", 1, domain.SeatFree)
	assert.False(t, state.IsSelected(key("1", 1)))
	assert.Zero(t, state.SelectedCount())
}

func TestToggleSeat_UnavailableSeatIsIgnored(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	before := c.State()

	state := c.ToggleSeat("1", 2, domain.SeatOccupied)
	assert.Equal(t, before.SelectedSeats(), state.SelectedSeats())

	state = c.ToggleSeat("2", 3, domain.SeatBlocked)
	assert.Zero(t, state.SelectedCount())
}

func TestToggleSeat_SelectedSeatCanAlwaysBeReleased(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, &domain.Selection{
		EventID: testEventID,
		Seats:   []domain.SelectedSeat{{Row: "2", Column: 3}},
	})

	require.True(t, c.State().IsSelected(key("2", 3)))

	state := c.ToggleSeat("2", 3, domain.SeatBlocked)
	assert.False(t, state.IsSelected(key("2", 3)))
}

func TestToggleSeat_FifthSeatIsIgnored(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	c.ToggleSeat("1", 1, domain.SeatFree)
	c.ToggleSeat("1", 3, domain.SeatFree)
	c.ToggleSeat("2", 1, domain.SeatFree)
	state := c.ToggleSeat("2", 2, domain.SeatFree)
	require.Equal(t, domain.MaxSeatsPerSelection, state.SelectedCount())

	extra := key("9", 9)
	state = c.ToggleSeat(extra.Row, extra.Column, domain.SeatFree)
	assert.Equal(t, domain.MaxSeatsPerSelection, state.SelectedCount())
	assert.False(t, state.IsSelected(extra))

	state = c.ToggleSeat("2", 2, domain.SeatFree)
	assert.Equal(t, 3, state.SelectedCount())
}

func TestToggleMapSeat_UsesSeatMapStatus(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	state, err := c.ToggleMapSeat("1", 1)
	require.NoError(t, err)
	assert.True(t, state.IsSelected(key("1", 1)))

	state, err = c.ToggleMapSeat("1", 2)
	require.NoError(t, err)
	assert.False(t, state.IsSelected(key("1", 2)))

	state, err = c.ToggleMapSeat("1", 1)
	require.NoError(t, err)
	assert.Zero(t, state.SelectedCount())
}

func TestToggleMapSeat_UnknownSeat(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	state, err := c.ToggleMapSeat("9", 9)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Zero(t, state.SelectedCount())
	assert.Zero(t, c.State().SelectedCount())
}

func TestToggleMapSeat_WithoutSeatMap(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	gw.On("GetEventDetail", mock.Anything, testEventID).Return(nil, errors.New("dial tcp: connection refused"))

	c := services.NewSeatSelectionCoordinator(gw, testEventID, nil)
	require.Error(t, c.Load(context.Background()))
	require.Nil(t, c.State().SeatMap)

	state, err := c.ToggleMapSeat("1", 1)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Zero(t, state.SelectedCount())
}

func TestBlockAndContinue_EmptySelection(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	hold, err := c.BlockAndContinue(context.Background())

	assert.Nil(t, hold)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	gw.AssertNotCalled(t, "UpdateSelectedEvent", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "BlockSeats", mock.Anything, mock.Anything)
}

func TestBlockAndContinue_TooManySeats(t *testing.T) {
	gw := mocks.NewBookingGateway(t)

	seats := make([]domain.SelectedSeat, 0, 5)
	for col := 1; col <= 5; col++ {
		seats = append(seats, domain.SelectedSeat{Row: "1", Column: col})
	}
	c := loadedCoordinator(t, gw, &domain.Selection{EventID: testEventID, Seats: seats})
	require.Equal(t, 5, c.State().SelectedCount())

	hold, err := c.BlockAndContinue(context.Background())

	assert.Nil(t, hold)
	assert.ErrorIs(t, err, domain.ErrTooManySeats)
	gw.AssertNotCalled(t, "UpdateSelectedEvent", mock.Anything, mock.Anything)
}

func TestBlockAndContinue_Success(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	c.ToggleSeat("1", 1, domain.SeatFree)
	c.ToggleSeat("2", 2, domain.SeatFree)

	expiry := time.Now().Add(10 * time.Minute)
	uploads := []domain.SelectedSeat{{Row: "1", Column: 1}, {Row: "2", Column: 2}}

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Return(nil).Once()
	gw.On("UpdateSelectedSeats", mock.Anything, uploads).Return(nil).Once()
	gw.On("BlockSeats", mock.Anything, testEventID).Return(&domain.BlockResult{Success: true}, nil).Once()
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(&domain.Selection{
		EventID:   testEventID,
		Seats:     uploads,
		ExpiresAt: &expiry,
	}, nil).Once()

	hold, err := c.BlockAndContinue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, hold)
	assert.Equal(t, testEventID, hold.EventID)
	assert.Equal(t, []domain.SeatKey{key("1", 1), key("2", 2)}, hold.Seats)
	require.NotNil(t, hold.ExpiresAt)
	assert.True(t, expiry.Equal(*hold.ExpiresAt))

	state := c.State()
	assert.False(t, state.IsBlocking)
	assert.Nil(t, state.Err)
	assert.NotNil(t, state.HoldExpiry)
}

func TestBlockAndContinue_HoldDoesNotShareSelection(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)
	c.ToggleSeat("1", 1, domain.SeatFree)

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Return(nil).Once()
	gw.On("UpdateSelectedSeats", mock.Anything, []domain.SelectedSeat{{Row: "1", Column: 1}}).Return(nil).Once()
	gw.On("BlockSeats", mock.Anything, testEventID).Return(&domain.BlockResult{Success: true}, nil).Once()
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(nil, nil).Once()

	hold, err := c.BlockAndContinue(context.Background())
	require.NoError(t, err)

	hold.Seats[0].Row = "Z"

	assert.Equal(t, []domain.SeatKey{key("1", 1)}, c.State().SelectedSeats())
	assert.True(t, c.State().IsSelected(key("1", 1)))
}

func TestBlockAndContinue_RejectedByServer(t *testing.T) {
	tests := []struct {
		name    string
		result  *domain.BlockResult
		message string
	}{
		{
			name:    "with message",
			result:  &domain.BlockResult{Success: false, Message: "Seat 1-1 was taken"},
			message: "Seat 1-1 was taken",
		},
		{
			name:    "without message",
			result:  &domain.BlockResult{Success: false},
			message: domain.ErrSeatsNotBlocked.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := mocks.NewBookingGateway(t)
			c := loadedCoordinator(t, gw, nil)
			c.ToggleSeat("1", 1, domain.SeatFree)

			gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Return(nil)
			gw.On("UpdateSelectedSeats", mock.Anything, mock.Anything).Return(nil)
			gw.On("BlockSeats", mock.Anything, testEventID).Return(tt.result, nil)

			hold, err := c.BlockAndContinue(context.Background())

			assert.Nil(t, hold)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSeatsNotBlocked)

			state := c.State()
			assert.False(t, state.IsBlocking)
			require.NotNil(t, state.Err)
			assert.Equal(t, tt.message, state.Err.Message)
			assert.Equal(t, domain.KindValidation, state.Err.Kind)
			assert.True(t, state.IsSelected(key("1", 1)))
		})
	}
}

func TestBlockAndContinue_StopsAtFirstFailure(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)
	c.ToggleSeat("1", 1, domain.SeatFree)

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Return(nil)
	gw.On("UpdateSelectedSeats", mock.Anything, mock.Anything).Return(domain.NewError(domain.KindNetwork, "", nil))

	_, err := c.BlockAndContinue(context.Background())

	assert.True(t, domain.IsKind(err, domain.KindNetwork))
	gw.AssertNotCalled(t, "BlockSeats", mock.Anything, mock.Anything)

	state := c.State()
	assert.False(t, state.IsBlocking)
	assert.Equal(t, "block", state.Err.Op)
}

func TestBlockAndContinue_EveryCallHitsTheServer(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)
	c.ToggleSeat("1", 1, domain.SeatFree)

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Return(nil).Times(2)
	gw.On("UpdateSelectedSeats", mock.Anything, mock.Anything).Return(nil).Times(2)
	gw.On("BlockSeats", mock.Anything, testEventID).Return(&domain.BlockResult{Success: false}, nil).Times(2)

	_, err := c.BlockAndContinue(context.Background())
	require.Error(t, err)

	_, err = c.BlockAndContinue(context.Background())
	require.Error(t, err)
}

func TestBlockAndContinue_InFlight(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)
	c.ToggleSeat("1", 1, domain.SeatFree)

	var duringToggle services.SelectionState
	var reentryErr error

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Run(func(args mock.Arguments) {
		duringToggle = c.ToggleSeat("1", 3, domain.SeatFree)
		_, reentryErr = c.BlockAndContinue(context.Background())
	}).Return(nil)
	gw.On("UpdateSelectedSeats", mock.Anything, []domain.SelectedSeat{{Row: "1", Column: 1}}).Return(nil)
	gw.On("BlockSeats", mock.Anything, testEventID).Return(&domain.BlockResult{Success: true}, nil)
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(nil, nil)

	hold, err := c.BlockAndContinue(context.Background())
	require.NoError(t, err)

	assert.True(t, duringToggle.IsBlocking)
	assert.False(t, duringToggle.IsSelected(key("1", 3)))
	assert.ErrorIs(t, reentryErr, domain.ErrOperationInFlight)
	assert.Equal(t, []domain.SeatKey{key("1", 1)}, hold.Seats)
	assert.Nil(t, hold.ExpiresAt)
}

func TestLoad_RejectedWhileBlocking(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)
	c.ToggleSeat("1", 1, domain.SeatFree)

	var loadErr error
	var duringLoad services.SelectionState

	gw.On("UpdateSelectedEvent", mock.Anything, testEventID).Run(func(args mock.Arguments) {
		loadErr = c.Load(context.Background())
		duringLoad = c.State()
	}).Return(nil)
	gw.On("UpdateSelectedSeats", mock.Anything, []domain.SelectedSeat{{Row: "1", Column: 1}}).Return(nil)
	gw.On("BlockSeats", mock.Anything, testEventID).Return(&domain.BlockResult{Success: true}, nil)
	gw.On("GetCurrentSelection", mock.Anything, testEventID).Return(nil, nil)

	hold, err := c.BlockAndContinue(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, loadErr, domain.ErrOperationInFlight)
	assert.True(t, duringLoad.IsBlocking)
	assert.False(t, duringLoad.IsLoading)
	assert.True(t, duringLoad.IsSelected(key("1", 1)))
	assert.Equal(t, []domain.SeatKey{key("1", 1)}, hold.Seats)
	assert.True(t, c.State().IsSelected(key("1", 1)))
}

func TestExpire_ClearsSelection(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	expiry := time.Now().Add(time.Minute)
	c := loadedCoordinator(t, gw, &domain.Selection{
		EventID:   testEventID,
		Seats:     []domain.SelectedSeat{{Row: "1", Column: 1}},
		ExpiresAt: &expiry,
	})

	state := c.Expire()

	assert.Zero(t, state.SelectedCount())
	assert.Nil(t, state.HoldExpiry)
	assert.ErrorIs(t, state.Err, domain.ErrHoldExpired)

	_, ok := c.Hold()
	assert.False(t, ok)
}

func TestSubscribe_ReceivesLatestState(t *testing.T) {
	gw := mocks.NewBookingGateway(t)
	c := loadedCoordinator(t, gw, nil)

	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	initial := <-updates
	assert.Zero(t, initial.SelectedCount())

	c.ToggleSeat("1", 1, domain.SeatFree)
	c.ToggleSeat("1", 3, domain.SeatFree)

	latest := <-updates
	assert.Equal(t, 2, latest.SelectedCount())

	unsubscribe()
	_, open := <-updates
	assert.False(t, open)
}
