// Package invoice models invoices issued by the program.
package invoice

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Invoice is a bill with one or more line items. Number is unique.
type Invoice struct {
	ID         int64
	Number     string
	ClientName string
	IssueDate  time.Time
	DueDate    time.Time
	Status     string
	Items      []lineitem.Item
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total returns the sum of the line item amounts in cents.
func (inv *Invoice) Total() int64 {
	return lineitem.Total(inv.Items)
}

// Category classifies the invoice status.
func (inv *Invoice) Category() status.Category {
	return status.Classify(status.Invoice, inv.Status)
}

// Validate checks business rules for the Invoice entity.
func (inv *Invoice) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(inv.Number), "number", domain.MsgRequired)
	fields.Check(validate.Required(inv.ClientName), "client_name", domain.MsgRequired)
	fields.Check(!inv.IssueDate.IsZero(), "issue_date", domain.MsgRequired)
	fields.Check(!inv.DueDate.IsZero(), "due_date", domain.MsgRequired)
	if !inv.IssueDate.IsZero() && !inv.DueDate.IsZero() {
		fields.Check(!inv.DueDate.Before(inv.IssueDate), "due_date", "must not be before issue_date")
	}
	fields.Check(reg.HasStatus(status.Invoice, inv.Status), "status", fmt.Sprintf("invalid: %q", inv.Status))
	lineitem.Check(fields, inv.Items)

	return fields.Err()
}

// Filter holds optional filter criteria for listing invoices.
type Filter struct {
	Status string
}

// Matches reports whether inv passes the filter.
func (f Filter) Matches(inv *Invoice) bool {
	return f.Status == "" || inv.Status == f.Status
}
