package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/seatflow/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS receipts (
	id         UUID PRIMARY KEY,
	sale_id    BIGINT,
	event_id   BIGINT NOT NULL,
	success    BOOLEAN NOT NULL,
	message    TEXT NOT NULL DEFAULT '',
	price      NUMERIC(12,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS receipt_items (
	id          UUID PRIMARY KEY,
	receipt_id  UUID NOT NULL REFERENCES receipts(id) ON DELETE CASCADE,
	seat_row    TEXT NOT NULL,
	seat_column INTEGER NOT NULL,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL
);
`

// ReceiptRepository records completed sales on the device.
type ReceiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

func (r *ReceiptRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create receipt schema: %w", err)
	}

	return nil
}

func (r *ReceiptRepository) SaveReceipt(ctx context.Context, receipt *domain.Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO receipts (id, sale_id, event_id, success, message, price, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var saleID sql.NullInt64
	if receipt.SaleID != nil {
		saleID = sql.NullInt64{Int64: *receipt.SaleID, Valid: true}
	}

	_, err = tx.ExecContext(ctx, queryHeader, receipt.ID, saleID, receipt.EventID, receipt.Success, receipt.Message, receipt.Price, receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert receipt header: %w", err)
	}

	queryItem := `
	INSERT INTO receipt_items (id, receipt_id, seat_row, seat_column, first_name, last_name)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, queryItem)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}

	defer stmt.Close()

	for _, item := range receipt.Items {
		_, err := stmt.ExecContext(ctx, item.ID, receipt.ID, item.Row, item.Column, item.FirstName, item.LastName)
		if err != nil {
			return fmt.Errorf("failed to insert receipt item seat %s-%d: %w", item.Row, item.Column, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *ReceiptRepository) ListReceipts(ctx context.Context, limit int) ([]domain.Receipt, error) {
	query := `
	SELECT id, sale_id, event_id, success, message, price, created_at
	FROM receipts
	ORDER BY created_at DESC
	LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var receipts []domain.Receipt
	var ids []string
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var rc domain.Receipt
		var saleID sql.NullInt64

		if err := rows.Scan(&rc.ID, &saleID, &rc.EventID, &rc.Success, &rc.Message, &rc.Price, &rc.CreatedAt); err != nil {
			return nil, err
		}

		if saleID.Valid {
			id := saleID.Int64
			rc.SaleID = &id
		}

		index[rc.ID] = len(receipts)
		ids = append(ids, rc.ID.String())
		receipts = append(receipts, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(receipts) == 0 {
		return receipts, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
	SELECT id, receipt_id, seat_row, seat_column, first_name, last_name
	FROM receipt_items
	WHERE receipt_id = ANY($1::uuid[])
	ORDER BY seat_row, seat_column
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt items: %w", err)
	}

	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.ReceiptItem
		if err := itemRows.Scan(&item.ID, &item.ReceiptID, &item.Row, &item.Column, &item.FirstName, &item.LastName); err != nil {
			return nil, err
		}

		if i, ok := index[item.ReceiptID]; ok {
			receipts[i].Items = append(receipts[i].Items, item)
		}
	}

	return receipts, itemRows.Err()
}
