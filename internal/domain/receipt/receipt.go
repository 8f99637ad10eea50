// Package receipt models expense receipts submitted for approval.
package receipt

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Receipt is an expense with one or more line items. DocumentID optionally
// references the uploaded scan.
type Receipt struct {
	ID           int64
	Vendor       string
	PurchaseDate time.Time
	Category     string
	Status       string
	DocumentID   *int64
	Items        []lineitem.Item
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Total returns the sum of the line item amounts in cents.
func (r *Receipt) Total() int64 {
	return lineitem.Total(r.Items)
}

// StatusCategory classifies the receipt status.
func (r *Receipt) StatusCategory() status.Category {
	return status.Classify(status.Receipt, r.Status)
}

// Validate checks business rules for the Receipt entity.
func (r *Receipt) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(r.Vendor), "vendor", domain.MsgRequired)
	fields.Check(!r.PurchaseDate.IsZero(), "purchase_date", domain.MsgRequired)
	fields.Check(reg.HasReceiptCategory(r.Category), "category", fmt.Sprintf("invalid: %q", r.Category))
	fields.Check(reg.HasStatus(status.Receipt, r.Status), "status", fmt.Sprintf("invalid: %q", r.Status))
	if r.DocumentID != nil {
		fields.Check(*r.DocumentID > 0, "document_id", fmt.Sprintf("must be positive, got %d", *r.DocumentID))
	}
	lineitem.Check(fields, r.Items)

	return fields.Err()
}

// Filter holds optional filter criteria for listing receipts.
type Filter struct {
	Status   string
	Category string
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r *Receipt) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return f.Category == "" || r.Category == f.Category
}
