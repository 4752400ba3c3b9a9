package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

const (
	eventsKey         = "events:list"
	eventDetailPrefix = "events:detail:"
)

// EventCache stores catalog reads as JSON with a short TTL. Seat maps and
// selections are never cached; they change too often.
type EventCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewEventCache(rdb *redis.Client, ttl time.Duration) *EventCache {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &EventCache{rdb: rdb, ttl: ttl}
}

func eventDetailKey(eventID int64) string {
	return fmt.Sprintf("%s%d", eventDetailPrefix, eventID)
}

func (c *EventCache) GetEvents(ctx context.Context) ([]domain.EventSummary, bool, error) {
	var events []domain.EventSummary
	found, err := c.get(ctx, eventsKey, &events)
	return events, found, err
}

func (c *EventCache) SetEvents(ctx context.Context, events []domain.EventSummary) error {
	return c.set(ctx, eventsKey, events)
}

func (c *EventCache) GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, bool, error) {
	var detail domain.EventDetail
	found, err := c.get(ctx, eventDetailKey(eventID), &detail)
	if !found || err != nil {
		return nil, false, err
	}

	return &detail, true, nil
}

func (c *EventCache) SetEventDetail(ctx context.Context, detail *domain.EventDetail) error {
	return c.set(ctx, eventDetailKey(detail.ID), detail)
}

func (c *EventCache) get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}

	return true, nil
}

func (c *EventCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}
