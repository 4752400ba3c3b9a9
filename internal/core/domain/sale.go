package domain

import (
	"time"

	"github.com/google/uuid"
)

type SaleSeat struct {
	Row       string `json:"row" validate:"required"`
	Column    int    `json:"column" validate:"gt=0"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type SaleRequest struct {
	EventID int64      `json:"event_id" validate:"gt=0"`
	Seats   []SaleSeat `json:"seats" validate:"required,min=1,max=4,dive"`
}

type SaleResult struct {
	SaleID  *int64    `json:"sale_id,omitempty"`
	EventID int64     `json:"event_id"`
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Date    time.Time `json:"date"`
	Price   float64   `json:"price"`
}

type Receipt struct {
	ID        uuid.UUID     `json:"id"`
	SaleID    *int64        `json:"sale_id,omitempty"`
	EventID   int64         `json:"event_id"`
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"`
	Price     float64       `json:"price"`
	CreatedAt time.Time     `json:"created_at"`
	Items     []ReceiptItem `json:"items"`
}

type ReceiptItem struct {
	ID        uuid.UUID `json:"id"`
	ReceiptID uuid.UUID `json:"receipt_id"`
	Row       string    `json:"row"`
	Column    int       `json:"column"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func NewReceipt(req SaleRequest, res SaleResult, now time.Time) *Receipt {
	r := &Receipt{
		ID:        uuid.New(),
		SaleID:    res.SaleID,
		EventID:   req.EventID,
		Success:   res.Success,
		Message:   res.Message,
		Price:     res.Price,
		CreatedAt: now,
	}

	for _, s := range req.Seats {
		r.Items = append(r.Items, ReceiptItem{
			ID:        uuid.New(),
			ReceiptID: r.ID,
			Row:       s.Row,
			Column:    s.Column,
			FirstName: s.FirstName,
			LastName:  s.LastName,
		})
	}

	return r
}
