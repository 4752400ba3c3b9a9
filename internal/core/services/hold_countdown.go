package services

import (
	"context"
	"time"
)

// Ticker abstracts time.Ticker so the countdown can be driven in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

type CountdownOption func(*HoldCountdown)

func WithClock(now func() time.Time) CountdownOption {
	return func(h *HoldCountdown) { h.now = now }
}

func WithTicker(newTicker func(time.Duration) Ticker) CountdownOption {
	return func(h *HoldCountdown) { h.newTicker = newTicker }
}

// HoldCountdown is a local estimate of how long a hold has left. It never
// talks to the server; local and server clocks may disagree.
type HoldCountdown struct {
	expiresAt time.Time
	now       func() time.Time
	newTicker func(time.Duration) Ticker
	onTick    func(remaining int64)
	onExpired func()
}

func NewHoldCountdown(expiresAt time.Time, onTick func(int64), onExpired func(), opts ...CountdownOption) *HoldCountdown {
	h := &HoldCountdown{
		expiresAt: expiresAt,
		now:       time.Now,
		newTicker: func(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} },
		onTick:    onTick,
		onExpired: onExpired,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.onTick == nil {
		h.onTick = func(int64) {}
	}
	if h.onExpired == nil {
		h.onExpired = func() {}
	}

	return h
}

func (h *HoldCountdown) Remaining() int64 {
	s := int64(h.expiresAt.Sub(h.now()) / time.Second)
	if s < 0 {
		return 0
	}

	return s
}

// Run reports the remaining seconds once per second and fires the expiry
// callback exactly once when they reach zero.
func (h *HoldCountdown) Run(ctx context.Context) error {
	remaining := h.Remaining()
	h.onTick(remaining)

	if remaining <= 0 {
		h.onExpired()
		return nil
	}

	ticker := h.newTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			remaining--
			h.onTick(remaining)

			if remaining <= 0 {
				h.onExpired()
				return nil
			}
		}
	}
}
