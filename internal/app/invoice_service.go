package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that InvoiceService implements ports.InvoiceService.
var _ ports.InvoiceService = (*InvoiceService)(nil)

// InvoiceService implements ports.InvoiceService.
type InvoiceService struct {
	repo     ports.InvoiceRepository
	registry *catalog.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewInvoiceService creates an InvoiceService.
func NewInvoiceService(repo ports.InvoiceRepository, reg *catalog.Registry, m *metrics.Metrics, logger *slog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, registry: reg, metrics: m, logger: orDiscard(logger)}
}

// ListInvoices returns invoices matching filter.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error) {
	s.logger.InfoContext(ctx, "listing invoices", slog.String("status", filter.Status))

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list invoices", "ListInvoices", err)
		return nil, err
	}
	return list, nil
}

// GetInvoice returns a single invoice with its line items.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	s.logger.InfoContext(ctx, "fetching invoice", slog.Int64("id", id))

	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch invoice", "GetInvoice", err, slog.Int64("id", id))
		return nil, err
	}
	return inv, nil
}

// CreateInvoice validates and stores a new invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	s.logger.InfoContext(ctx, "creating invoice",
		slog.String("number", inv.Number),
		slog.Int("line_items", len(inv.Items)),
	)

	if err := inv.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("invoice", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create invoice", "CreateInvoice", err, slog.String("number", inv.Number))
		return nil, err
	}
	return created, nil
}

// UpdateInvoice validates and replaces an invoice and its line items.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int64, inv *invoice.Invoice) (*invoice.Invoice, error) {
	s.logger.InfoContext(ctx, "updating invoice", slog.Int64("id", id))

	if err := inv.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("invoice", err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, inv)
	if err != nil {
		logFailure(ctx, s.logger, "failed to update invoice", "UpdateInvoice", err, slog.Int64("id", id))
		return nil, err
	}
	return updated, nil
}

// DeleteInvoice removes an invoice and its line items.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting invoice", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete invoice", "DeleteInvoice", err, slog.Int64("id", id))
		return err
	}
	return nil
}
