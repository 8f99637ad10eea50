package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

const msgInvalidDate = "must be a date in YYYY-MM-DD format"

// Request bodies carry the whole record: POST creates it and PUT replaces
// it. Business rules are checked by the domain entity; Validate here only
// rejects what cannot be mapped, such as malformed dates.

// parseDate parses s, treating "" as the zero time.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

func checkDate(fields validate.Fields, field, value string) {
	_, ok := parseDate(value)
	fields.Check(ok, field, msgInvalidDate)
}

func mustDate(s string) time.Time {
	t, _ := parseDate(s)
	return t
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate flags only the fields that fail the email and password checks.
func (r *LoginRequest) Validate() error {
	return r.Credentials().Validate()
}

// Credentials maps the request to the domain type.
func (r *LoginRequest) Credentials() user.Credentials {
	return user.Credentials{Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// StaffRequest is the body of POST and PUT /staff.
type StaffRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
	Position  string `json:"position,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

// Validate accepts every well-formed body; the entity checks the rest.
func (r *StaffRequest) Validate() error { return nil }

// ToStaff maps the request to a staff entity. Role defaults to staff and
// Active to true.
func (r *StaffRequest) ToStaff() *staff.Staff {
	s := &staff.Staff{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		Role:      r.Role,
		Position:  r.Position,
		Active:    true,
	}
	if s.Role == "" {
		s.Role = catalog.RoleStaff
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return s
}

// MenteeRequest is the body of POST and PUT /mentees.
type MenteeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	MentorID  *int64 `json:"mentor_id,omitempty"`
	Program   string `json:"program"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"start_date"`
	Notes     string `json:"notes,omitempty"`
}

// Validate checks the start date format.
func (r *MenteeRequest) Validate() error {
	fields := validate.Fields{}
	checkDate(fields, "start_date", r.StartDate)
	return fields.Err()
}

// ToMentee maps the request to a mentee entity. Status defaults to active.
func (r *MenteeRequest) ToMentee() *mentee.Mentee {
	m := &mentee.Mentee{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		MentorID:  r.MentorID,
		Program:   r.Program,
		Status:    r.Status,
		StartDate: mustDate(r.StartDate),
		Notes:     r.Notes,
	}
	if m.Status == "" {
		m.Status = status.MenteeActive
	}
	return m
}

// LineItemRequest is one priced row of an invoice or receipt.
type LineItemRequest struct {
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func toLineItems(in []LineItemRequest) []lineitem.Item {
	items := make([]lineitem.Item, len(in))
	for i, it := range in {
		items[i] = lineitem.Item{
			Description:    strings.TrimSpace(it.Description),
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		}
	}
	return items
}

// InvoiceRequest is the body of POST and PUT /invoices.
type InvoiceRequest struct {
	Number     string            `json:"number"`
	ClientName string            `json:"client_name"`
	IssueDate  string            `json:"issue_date"`
	DueDate    string            `json:"due_date"`
	Status     string            `json:"status,omitempty"`
	Items      []LineItemRequest `json:"line_items"`
	Notes      string            `json:"notes,omitempty"`
}

// Validate checks the date formats.
func (r *InvoiceRequest) Validate() error {
	fields := validate.Fields{}
	checkDate(fields, "issue_date", r.IssueDate)
	checkDate(fields, "due_date", r.DueDate)
	return fields.Err()
}

// ToInvoice maps the request to an invoice entity. Status defaults to
// pending.
func (r *InvoiceRequest) ToInvoice() *invoice.Invoice {
	inv := &invoice.Invoice{
		Number:     strings.TrimSpace(r.Number),
		ClientName: strings.TrimSpace(r.ClientName),
		IssueDate:  mustDate(r.IssueDate),
		DueDate:    mustDate(r.DueDate),
		Status:     r.Status,
		Items:      toLineItems(r.Items),
		Notes:      r.Notes,
	}
	if inv.Status == "" {
		inv.Status = status.InvoicePending
	}
	return inv
}

// ReceiptRequest is the body of POST and PUT /receipts.
type ReceiptRequest struct {
	Vendor       string            `json:"vendor"`
	PurchaseDate string            `json:"purchase_date"`
	Category     string            `json:"category"`
	Status       string            `json:"status,omitempty"`
	DocumentID   *int64            `json:"document_id,omitempty"`
	Items        []LineItemRequest `json:"line_items"`
}

// Validate checks the purchase date format.
func (r *ReceiptRequest) Validate() error {
	fields := validate.Fields{}
	checkDate(fields, "purchase_date", r.PurchaseDate)
	return fields.Err()
}

// ToReceipt maps the request to a receipt entity. Status defaults to
// pending.
func (r *ReceiptRequest) ToReceipt() *receipt.Receipt {
	rc := &receipt.Receipt{
		Vendor:       strings.TrimSpace(r.Vendor),
		PurchaseDate: mustDate(r.PurchaseDate),
		Category:     r.Category,
		Status:       r.Status,
		DocumentID:   r.DocumentID,
		Items:        toLineItems(r.Items),
	}
	if rc.Status == "" {
		rc.Status = status.ReceiptPending
	}
	return rc
}

// InventoryRequest is the body of POST and PUT /inventory. The stock status
// is derived and cannot be set.
type InventoryRequest struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	ReorderLevel  int    `json:"reorder_level"`
	MaxLevel      int    `json:"max_level"`
	UnitCostCents int64  `json:"unit_cost_cents"`
	Location      string `json:"location,omitempty"`
}

// Validate accepts every well-formed body; the entity checks the rest.
func (r *InventoryRequest) Validate() error { return nil }

// ToItem maps the request to an inventory item.
func (r *InventoryRequest) ToItem() *inventory.Item {
	return &inventory.Item{
		Name:          strings.TrimSpace(r.Name),
		SKU:           strings.TrimSpace(r.SKU),
		Category:      r.Category,
		Quantity:      r.Quantity,
		ReorderLevel:  r.ReorderLevel,
		MaxLevel:      r.MaxLevel,
		UnitCostCents: r.UnitCostCents,
		Location:      r.Location,
	}
}
