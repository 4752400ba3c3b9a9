package services

import (
	"context"
	"log/slog"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports"
)

// EventCatalog reads events through an optional cache.
type EventCatalog struct {
	gateway ports.BookingGateway
	cache   ports.EventCache
	logger  *slog.Logger
}

func NewEventCatalog(gateway ports.BookingGateway, cache ports.EventCache, logger *slog.Logger) *EventCatalog {
	if logger == nil {
		logger = slog.Default()
	}

	return &EventCatalog{gateway: gateway, cache: cache, logger: logger}
}

func (c *EventCatalog) List(ctx context.Context) ([]domain.EventSummary, error) {
	if c.cache != nil {
		events, found, err := c.cache.GetEvents(ctx)
		if err != nil {
			c.logger.Warn("event cache read failed", slog.String("error", err.Error()))
		} else if found {
			return events, nil
		}
	}

	events, err := c.gateway.ListEvents(ctx)
	if err != nil {
		return nil, domain.AsAppError(err).WithOp("events")
	}

	if c.cache != nil {
		if err := c.cache.SetEvents(ctx, events); err != nil {
			c.logger.Warn("event cache write failed", slog.String("error", err.Error()))
		}
	}

	return events, nil
}

func (c *EventCatalog) Detail(ctx context.Context, eventID int64) (*domain.EventDetail, error) {
	if c.cache != nil {
		detail, found, err := c.cache.GetEventDetail(ctx, eventID)
		if err != nil {
			c.logger.Warn("event cache read failed", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		} else if found {
			return detail, nil
		}
	}

	detail, err := c.gateway.GetEventDetail(ctx, eventID)
	if err != nil {
		return nil, domain.AsAppError(err).WithOp("event")
	}

	if c.cache != nil {
		if err := c.cache.SetEventDetail(ctx, detail); err != nil {
			c.logger.Warn("event cache write failed", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		}
	}

	return detail, nil
}

// Open returns the event and, when the server still has seats selected for
// it, the hold to resume from. A failed selection lookup is not an error.
func (c *EventCatalog) Open(ctx context.Context, eventID int64) (*domain.EventDetail, *domain.Hold, error) {
	detail, err := c.Detail(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	selection, err := c.gateway.GetCurrentSelection(ctx, eventID)
	if err != nil {
		c.logger.Warn("current selection lookup failed", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		return detail, nil, nil
	}

	if selection.IsEmpty() {
		return detail, nil, nil
	}

	return detail, &domain.Hold{EventID: eventID, Seats: selection.Keys(), ExpiresAt: selection.ExpiresAt}, nil
}
