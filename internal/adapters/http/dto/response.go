// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// ListResponse wraps a list of records.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// toList maps records with fn.
func toList[E, T any](records []E, fn func(*E) T) ListResponse[T] {
	items := make([]T, len(records))
	for i := range records {
		items[i] = fn(&records[i])
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

func timestamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// StaffResponse represents a staff member.
type StaffResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Position  string `json:"position,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToStaffResponse converts a staff entity.
func ToStaffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		FullName:  s.FullName(),
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      s.Role,
		Position:  s.Position,
		Active:    s.Active,
		CreatedAt: timestamp(s.CreatedAt),
		UpdatedAt: timestamp(s.UpdatedAt),
	}
}

// ToStaffListResponse converts staff entities.
func ToStaffListResponse(list []staff.Staff) ListResponse[StaffResponse] {
	return toList(list, ToStaffResponse)
}

// MenteeResponse represents a mentee with its classified status.
type MenteeResponse struct {
	ID         int64             `json:"id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	MentorID   *int64            `json:"mentor_id,omitempty"`
	Program    string            `json:"program"`
	Status     string            `json:"status"`
	StatusInfo status.Descriptor `json:"status_info"`
	StartDate  string            `json:"start_date"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// ToMenteeResponse converts a mentee entity.
func ToMenteeResponse(m *mentee.Mentee) MenteeResponse {
	return MenteeResponse{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		MentorID:   m.MentorID,
		Program:    m.Program,
		Status:     m.Status,
		StatusInfo: status.Describe(status.Mentee, m.Status),
		StartDate:  date(m.StartDate),
		Notes:      m.Notes,
		CreatedAt:  timestamp(m.CreatedAt),
		UpdatedAt:  timestamp(m.UpdatedAt),
	}
}

// ToMenteeListResponse converts mentee entities.
func ToMenteeListResponse(list []mentee.Mentee) ListResponse[MenteeResponse] {
	return toList(list, ToMenteeResponse)
}

// LineItemResponse is one priced row with its amount.
type LineItemResponse struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	AmountCents    int64  `json:"amount_cents"`
}

func toLineItemResponses(items []lineitem.Item) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse{
			ID:             it.ID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			AmountCents:    it.Amount(),
		}
	}
	return out
}

// InvoiceResponse represents an invoice with its total and classified
// status.
type InvoiceResponse struct {
	ID         int64              `json:"id"`
	Number     string             `json:"number"`
	ClientName string             `json:"client_name"`
	IssueDate  string             `json:"issue_date"`
	DueDate    string             `json:"due_date"`
	Status     string             `json:"status"`
	StatusInfo status.Descriptor  `json:"status_info"`
	Items      []LineItemResponse `json:"line_items"`
	TotalCents int64              `json:"total_cents"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// ToInvoiceResponse converts an invoice entity.
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientName: inv.ClientName,
		IssueDate:  date(inv.IssueDate),
		DueDate:    date(inv.DueDate),
		Status:     inv.Status,
		StatusInfo: status.Describe(status.Invoice, inv.Status),
		Items:      toLineItemResponses(inv.Items),
		TotalCents: inv.Total(),
		Notes:      inv.Notes,
		CreatedAt:  timestamp(inv.CreatedAt),
		UpdatedAt:  timestamp(inv.UpdatedAt),
	}
}

// ToInvoiceListResponse converts invoice entities.
func ToInvoiceListResponse(list []invoice.Invoice) ListResponse[InvoiceResponse] {
	return toList(list, ToInvoiceResponse)
}

// ReceiptResponse represents a receipt with its total and classified status.
type ReceiptResponse struct {
	ID           int64              `json:"id"`
	Vendor       string             `json:"vendor"`
	PurchaseDate string             `json:"purchase_date"`
	Category     string             `json:"category"`
	Status       string             `json:"status"`
	StatusInfo   status.Descriptor  `json:"status_info"`
	DocumentID   *int64             `json:"document_id,omitempty"`
	Items        []LineItemResponse `json:"line_items"`
	TotalCents   int64              `json:"total_cents"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// ToReceiptResponse converts a receipt entity.
func ToReceiptResponse(r *receipt.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           r.ID,
		Vendor:       r.Vendor,
		PurchaseDate: date(r.PurchaseDate),
		Category:     r.Category,
		Status:       r.Status,
		StatusInfo:   status.Describe(status.Receipt, r.Status),
		DocumentID:   r.DocumentID,
		Items:        toLineItemResponses(r.Items),
		TotalCents:   r.Total(),
		CreatedAt:    timestamp(r.CreatedAt),
		UpdatedAt:    timestamp(r.UpdatedAt),
	}
}

// ToReceiptListResponse converts receipt entities.
func ToReceiptListResponse(list []receipt.Receipt) ListResponse[ReceiptResponse] {
	return toList(list, ToReceiptResponse)
}

// InventoryResponse represents an inventory item with its derived stock
// status.
type InventoryResponse struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	SKU             string            `json:"sku"`
	Category        string            `json:"category"`
	Quantity        int               `json:"quantity"`
	ReorderLevel    int               `json:"reorder_level"`
	MaxLevel        int               `json:"max_level"`
	UnitCostCents   int64             `json:"unit_cost_cents"`
	Location        string            `json:"location,omitempty"`
	StockStatus     string            `json:"stock_status"`
	StockStatusInfo status.Descriptor `json:"stock_status_info"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// ToInventoryResponse converts an inventory item.
func ToInventoryResponse(it *inventory.Item) InventoryResponse {
	return InventoryResponse{
		ID:              it.ID,
		Name:            it.Name,
		SKU:             it.SKU,
		Category:        it.Category,
		Quantity:        it.Quantity,
		ReorderLevel:    it.ReorderLevel,
		MaxLevel:        it.MaxLevel,
		UnitCostCents:   it.UnitCostCents,
		Location:        it.Location,
		StockStatus:     it.StockStatus,
		StockStatusInfo: status.Describe(status.Stock, it.StockStatus),
		CreatedAt:       timestamp(it.CreatedAt),
		UpdatedAt:       timestamp(it.UpdatedAt),
	}
}

// ToInventoryListResponse converts inventory items.
func ToInventoryListResponse(list []inventory.Item) ListResponse[InventoryResponse] {
	return toList(list, ToInventoryResponse)
}

// DocumentResponse represents document metadata. The storage key stays
// internal.
type DocumentResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Class       string `json:"class"`
	Category    string `json:"category"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	UploadedBy  int64  `json:"uploaded_by"`
	CreatedAt   string `json:"created_at"`
}

// ToDocumentResponse converts document metadata.
func ToDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Class:       string(d.Class),
		Category:    d.Category,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   timestamp(d.CreatedAt),
	}
}

// ToDocumentListResponse converts document metadata.
func ToDocumentListResponse(list []document.Document) ListResponse[DocumentResponse] {
	return toList(list, ToDocumentResponse)
}

// UserResponse represents the signed-in account. The password hash is never
// serialized.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse is the body of a successful login.
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   string       `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// ToSessionResponse converts a session.
func ToSessionResponse(s *ports.Session) SessionResponse {
	return SessionResponse{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		ExpiresAt:   timestamp(s.ExpiresAt),
		User:        toUserResponse(s.User),
	}
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// DashboardResponse carries record counts per entity type and category.
type DashboardResponse struct {
	Counts      map[status.EntityType]map[status.Category]int `json:"counts"`
	Staff       int                                           `json:"staff"`
	Documents   int                                           `json:"documents"`
	GeneratedAt string                                        `json:"generated_at"`
}

// ToDashboardResponse converts a dashboard summary.
func ToDashboardResponse(d *ports.Dashboard) DashboardResponse {
	counts := make(map[status.EntityType]map[status.Category]int, len(d.Counts))
	for e, c := range d.Counts {
		counts[e] = c
	}
	return DashboardResponse{
		Counts:      counts,
		Staff:       d.Staff,
		Documents:   d.Documents,
		GeneratedAt: timestamp(d.GeneratedAt),
	}
}
