package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/seatflow/internal/core/services"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time)}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped = true }

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestHoldCountdown_TicksDownToZero(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ticker := newFakeTicker()

	var ticks []int64
	expired := 0

	countdown := services.NewHoldCountdown(now.Add(5*time.Second),
		func(remaining int64) { ticks = append(ticks, remaining) },
		func() { expired++ },
		services.WithClock(fixedClock(now)),
		services.WithTicker(func(time.Duration) services.Ticker { return ticker }),
	)

	done := make(chan error, 1)
	go func() { done <- countdown.Run(context.Background()) }()

	for i := 0; i < 5; i++ {
		ticker.ch <- now
	}

	require.NoError(t, <-done)
	assert.Equal(t, []int64{5, 4, 3, 2, 1, 0}, ticks)
	assert.Equal(t, 1, expired)
	assert.True(t, ticker.stopped)
}

func TestHoldCountdown_AlreadyExpired(t *testing.T) {
	now := time.Now()
	expired := 0
	var ticks []int64

	countdown := services.NewHoldCountdown(now.Add(-time.Minute),
		func(remaining int64) { ticks = append(ticks, remaining) },
		func() { expired++ },
		services.WithClock(fixedClock(now)),
		services.WithTicker(func(time.Duration) services.Ticker {
			t.Fatal("ticker must not be created for an expired hold")
			return nil
		}),
	)

	require.NoError(t, countdown.Run(context.Background()))
	assert.Equal(t, []int64{0}, ticks)
	assert.Equal(t, 1, expired)
}

func TestHoldCountdown_Cancelled(t *testing.T) {
	now := time.Now()
	ticker := newFakeTicker()
	expired := false

	countdown := services.NewHoldCountdown(now.Add(time.Hour), nil,
		func() { expired = true },
		services.WithClock(fixedClock(now)),
		services.WithTicker(func(time.Duration) services.Ticker { return ticker }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- countdown.Run(ctx) }()

	ticker.ch <- now
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, expired)
}

func TestHoldCountdown_Remaining(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int64
	}{
		{name: "whole seconds", expiresAt: now.Add(90 * time.Second), want: 90},
		{name: "rounds down", expiresAt: now.Add(2500 * time.Millisecond), want: 2},
		{name: "past", expiresAt: now.Add(-5 * time.Second), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := services.NewHoldCountdown(tt.expiresAt, nil, nil, services.WithClock(fixedClock(now)))
			assert.Equal(t, tt.want, c.Remaining())
		})
	}
}
