// Package inventory models stocked items and the rules that derive their
// stock status.
package inventory

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Item is a stocked article. SKU is unique. StockStatus is not stored; it is
// derived from the quantities by StockRules when the item is read.
type Item struct {
	ID            int64
	Name          string
	SKU           string
	Category      string
	Quantity      int
	ReorderLevel  int
	MaxLevel      int
	UnitCostCents int64
	Location      string
	StockStatus   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks business rules for the inventory Item entity.
func (it *Item) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(it.Name), "name", domain.MsgRequired)
	fields.Check(validate.Required(it.SKU), "sku", domain.MsgRequired)
	fields.Check(reg.HasInventoryCategory(it.Category), "category", fmt.Sprintf("invalid: %q", it.Category))
	fields.Check(it.Quantity >= 0, "quantity", fmt.Sprintf("must not be negative, got %d", it.Quantity))
	fields.Check(it.ReorderLevel >= 0, "reorder_level", fmt.Sprintf("must not be negative, got %d", it.ReorderLevel))
	fields.Check(it.MaxLevel >= 0, "max_level", fmt.Sprintf("must not be negative, got %d", it.MaxLevel))
	fields.Check(it.UnitCostCents >= 0, "unit_cost_cents", fmt.Sprintf("must not be negative, got %d", it.UnitCostCents))

	return fields.Err()
}

// Filter holds optional filter criteria for listing inventory. StockStatus is
// applied after derivation, so repositories ignore it.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Category    string
	StockStatus string
}

// StatusCategory classifies the derived stock status.
func (it *Item) StatusCategory() status.Category {
	return status.Classify(status.Stock, it.StockStatus)
}
