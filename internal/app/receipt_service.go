package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that ReceiptService implements ports.ReceiptService.
var _ ports.ReceiptService = (*ReceiptService)(nil)

// ReceiptService implements ports.ReceiptService. An attached scan must be a
// stored document of the receipt class.
type ReceiptService struct {
	repo      ports.ReceiptRepository
	documents ports.DocumentRepository
	registry  *catalog.Registry
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewReceiptService creates a ReceiptService.
func NewReceiptService(
	repo ports.ReceiptRepository,
	documents ports.DocumentRepository,
	reg *catalog.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ReceiptService {
	return &ReceiptService{repo: repo, documents: documents, registry: reg, metrics: m, logger: orDiscard(logger)}
}

// ListReceipts returns receipts matching filter.
func (s *ReceiptService) ListReceipts(ctx context.Context, filter receipt.Filter) ([]receipt.Receipt, error) {
	s.logger.InfoContext(ctx, "listing receipts",
		slog.String("status", filter.Status),
		slog.String("category", filter.Category),
	)

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list receipts", "ListReceipts", err)
		return nil, err
	}
	return list, nil
}

// GetReceipt returns a single receipt with its line items.
func (s *ReceiptService) GetReceipt(ctx context.Context, id int64) (*receipt.Receipt, error) {
	s.logger.InfoContext(ctx, "fetching receipt", slog.Int64("id", id))

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch receipt", "GetReceipt", err, slog.Int64("id", id))
		return nil, err
	}
	return r, nil
}

// CreateReceipt validates and stores a new receipt.
func (s *ReceiptService) CreateReceipt(ctx context.Context, r *receipt.Receipt) (*receipt.Receipt, error) {
	s.logger.InfoContext(ctx, "creating receipt", slog.String("category", r.Category))

	if err := s.check(ctx, r, "CreateReceipt"); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, r)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create receipt", "CreateReceipt", err)
		return nil, err
	}
	return created, nil
}

// UpdateReceipt validates and replaces a receipt and its line items.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, id int64, r *receipt.Receipt) (*receipt.Receipt, error) {
	s.logger.InfoContext(ctx, "updating receipt", slog.Int64("id", id))

	if err := s.check(ctx, r, "UpdateReceipt"); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, r)
	if err != nil {
		logFailure(ctx, s.logger, "failed to update receipt", "UpdateReceipt", err, slog.Int64("id", id))
		return nil, err
	}
	return updated, nil
}

// DeleteReceipt removes a receipt. The attached document is kept.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting receipt", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete receipt", "DeleteReceipt", err, slog.Int64("id", id))
		return err
	}
	return nil
}

func (s *ReceiptService) check(ctx context.Context, r *receipt.Receipt, operation string) error {
	if err := r.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("receipt", err)
		return err
	}
	if r.DocumentID == nil {
		return nil
	}

	docID := *r.DocumentID
	doc, err := s.documents.Get(ctx, docID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		verr := domain.NewValidationError("document_id", fmt.Sprintf("document %d does not exist", docID))
		s.metrics.ObserveValidation("receipt", verr)
		return verr
	case err != nil:
		logFailure(ctx, s.logger, "failed to verify document", operation, err, slog.Int64("document_id", docID))
		return fmt.Errorf("verifying document: %w", err)
	case doc.Class != catalog.ClassReceipt:
		verr := domain.NewValidationError("document_id",
			fmt.Sprintf("document %d is a %s upload, not a receipt", docID, doc.Class))
		s.metrics.ObserveValidation("receipt", verr)
		return verr
	}
	return nil
}
