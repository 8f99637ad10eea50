package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that InventoryService implements ports.InventoryService.
var _ ports.InventoryService = (*InventoryService)(nil)

// InventoryService implements ports.InventoryService. Every item it returns
// carries the stock status derived by the configured rules.
type InventoryService struct {
	repo     ports.InventoryRepository
	rules    *inventory.StockRules
	registry *catalog.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewInventoryService creates an InventoryService. A nil rules value uses
// inventory.DefaultRules.
func NewInventoryService(
	repo ports.InventoryRepository,
	rules *inventory.StockRules,
	reg *catalog.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *InventoryService {
	if rules == nil {
		rules = inventory.MustDefaultRules()
	}
	return &InventoryService{repo: repo, rules: rules, registry: reg, metrics: m, logger: orDiscard(logger)}
}

// ListItems returns items matching filter. Filter.StockStatus is applied
// after the status is derived.
func (s *InventoryService) ListItems(ctx context.Context, filter inventory.Filter) ([]inventory.Item, error) {
	s.logger.InfoContext(ctx, "listing inventory",
		slog.String("category", filter.Category),
		slog.String("stock_status", filter.StockStatus),
	)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list inventory", "ListItems", err)
		return nil, err
	}

	out := items[:0]
	for i := range items {
		if err := s.derive(&items[i]); err != nil {
			logFailure(ctx, s.logger, "failed to derive stock status", "ListItems", err, slog.Int64("id", items[i].ID))
			return nil, err
		}
		if filter.StockStatus == "" || items[i].StockStatus == filter.StockStatus {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// GetItem returns a single item.
func (s *InventoryService) GetItem(ctx context.Context, id int64) (*inventory.Item, error) {
	s.logger.InfoContext(ctx, "fetching inventory item", slog.Int64("id", id))

	it, err := s.repo.Get(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch inventory item", "GetItem", err, slog.Int64("id", id))
		return nil, err
	}
	return it, s.derive(it)
}

// CreateItem validates and stores a new item.
func (s *InventoryService) CreateItem(ctx context.Context, it *inventory.Item) (*inventory.Item, error) {
	s.logger.InfoContext(ctx, "creating inventory item", slog.String("sku", it.SKU))

	if err := it.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("inventory", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, it)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create inventory item", "CreateItem", err, slog.String("sku", it.SKU))
		return nil, err
	}
	return created, s.derive(created)
}

// UpdateItem validates and replaces an item.
func (s *InventoryService) UpdateItem(ctx context.Context, id int64, it *inventory.Item) (*inventory.Item, error) {
	s.logger.InfoContext(ctx, "updating inventory item", slog.Int64("id", id))

	if err := it.Validate(s.registry); err != nil {
		s.metrics.ObserveValidation("inventory", err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, it)
	if err != nil {
		logFailure(ctx, s.logger, "failed to update inventory item", "UpdateItem", err, slog.Int64("id", id))
		return nil, err
	}
	return updated, s.derive(updated)
}

// DeleteItem removes an item.
func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting inventory item", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete inventory item", "DeleteItem", err, slog.Int64("id", id))
		return err
	}
	return nil
}

func (s *InventoryService) derive(it *inventory.Item) error {
	st, err := s.rules.Evaluate(it)
	if err != nil {
		return fmt.Errorf("deriving stock status of %q: %w", it.SKU, err)
	}
	it.StockStatus = st
	return nil
}
