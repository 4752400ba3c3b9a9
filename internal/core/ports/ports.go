package ports

import (
	"context"
	"time"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

// BookingGateway is the mobile booking API as seen by the client.
type BookingGateway interface {
	ListEvents(ctx context.Context) ([]domain.EventSummary, error)
	GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, error)
	GetSeatMap(ctx context.Context, eventID int64) (*domain.SeatMap, error)
	GetCurrentSelection(ctx context.Context, eventID int64) (*domain.Selection, error)
	UpdateSelectedEvent(ctx context.Context, eventID int64) error
	UpdateSelectedSeats(ctx context.Context, seats []domain.SelectedSeat) error
	BlockSeats(ctx context.Context, eventID int64) (*domain.BlockResult, error)
	ProcessSale(ctx context.Context, req domain.SaleRequest) (*domain.SaleResult, error)
}

type AuthGateway interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// TokenStore keeps the session token. Get returns "" when nothing is stored.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// EventCache returns found=false on a miss.
type EventCache interface {
	GetEvents(ctx context.Context) ([]domain.EventSummary, bool, error)
	SetEvents(ctx context.Context, events []domain.EventSummary) error
	GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, bool, error)
	SetEventDetail(ctx context.Context, detail *domain.EventDetail) error
}

type ReceiptRepository interface {
	SaveReceipt(ctx context.Context, receipt *domain.Receipt) error
	ListReceipts(ctx context.Context, limit int) ([]domain.Receipt, error)
}
