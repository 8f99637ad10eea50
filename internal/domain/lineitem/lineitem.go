// Package lineitem models the priced rows shared by invoices and receipts.
package lineitem

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Item is one priced row. Prices are in minor currency units (cents).
type Item struct {
	ID             int64
	Description    string
	Quantity       int
	UnitPriceCents int64
}

// Amount returns Quantity × UnitPriceCents.
func (i Item) Amount() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

// Total sums the amounts of items.
func Total(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount()
	}
	return total
}

// MaxQuantity matches the INTEGER quantity column.
const MaxQuantity = math.MaxInt32

// Check records failures for items into fields under "line_items". At least
// one item is required. Amounts and the running total must fit in int64.
func Check(fields validate.Fields, items []Item) {
	if len(items) == 0 {
		fields.Add("line_items", domain.MsgMustNotEmpty)
		return
	}
	var total int64
	overflowed := false
	for i, it := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		fields.Check(validate.Required(it.Description), prefix+".description", domain.MsgRequired)
		fields.Check(it.Quantity > 0, prefix+".quantity", fmt.Sprintf("must be positive, got %d", it.Quantity))
		fields.Check(it.Quantity <= MaxQuantity, prefix+".quantity",
			fmt.Sprintf("must be at most %d, got %d", MaxQuantity, it.Quantity))
		fields.Check(it.UnitPriceCents >= 0, prefix+".unit_price_cents",
			fmt.Sprintf("must not be negative, got %d", it.UnitPriceCents))

		if overflowed || it.Quantity <= 0 || it.Quantity > MaxQuantity || it.UnitPriceCents < 0 {
			continue
		}
		if it.UnitPriceCents > math.MaxInt64/int64(it.Quantity) {
			fields.Add(prefix+".quantity", "quantity times unit price is too large")
			overflowed = true
			continue
		}
		amount := it.Amount()
		if total > math.MaxInt64-amount {
			fields.Add(prefix+".unit_price_cents", "line item total is too large")
			overflowed = true
			continue
		}
		total += amount
	}
}
