package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports"
)

type CheckoutService struct {
	gateway  ports.BookingGateway
	receipts ports.ReceiptRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewCheckoutService builds the sale step. receipts may be nil, in which case
// completed sales are not recorded locally.
func NewCheckoutService(gateway ports.BookingGateway, receipts ports.ReceiptRepository, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}

	return &CheckoutService{
		gateway:  gateway,
		receipts: receipts,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessSale submits the purchase. Hold validity is decided by the server.
func (s *CheckoutService) ProcessSale(ctx context.Context, req domain.SaleRequest) (*domain.SaleResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.NewError(domain.KindValidation, "invalid sale request", err).WithOp("sale")
	}

	res, err := s.gateway.ProcessSale(ctx, req)
	if err != nil {
		s.logger.Error("sale failed", slog.Int64("event_id", req.EventID), slog.String("error", err.Error()))
		return nil, domain.AsAppError(err).WithOp("sale")
	}

	if res.EventID == 0 {
		res.EventID = req.EventID
	}

	s.logger.Info("sale processed",
		slog.Int64("event_id", req.EventID),
		slog.Bool("success", res.Success),
		slog.Int("seats", len(req.Seats)),
	)

	if s.receipts != nil {
		receipt := domain.NewReceipt(req, *res, s.now())
		if err := s.receipts.SaveReceipt(ctx, receipt); err != nil {
			s.logger.Warn("failed to store receipt", slog.String("receipt_id", receipt.ID.String()), slog.String("error", err.Error()))
		}
	}

	return res, nil
}

func (s *CheckoutService) Receipts(ctx context.Context, limit int) ([]domain.Receipt, error) {
	if s.receipts == nil {
		return nil, nil
	}

	if limit <= 0 {
		limit = 50
	}

	receipts, err := s.receipts.ListReceipts(ctx, limit)
	if err != nil {
		return nil, domain.NewError(domain.KindUnknown, "failed to read receipts", err)
	}

	return receipts, nil
}
