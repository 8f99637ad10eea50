package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
)

// StaffService defines the use cases for staff records.
// Implemented by the application layer; called by HTTP handlers.
type StaffService interface {
	ListStaff(ctx context.Context, filter staff.Filter) ([]staff.Staff, error)
	GetStaff(ctx context.Context, id int64) (*staff.Staff, error)
	CreateStaff(ctx context.Context, s *staff.Staff) (*staff.Staff, error)
	UpdateStaff(ctx context.Context, id int64, s *staff.Staff) (*staff.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error
}

// MenteeService defines the use cases for mentee records. Create and Update
// verify that the referenced mentor exists.
type MenteeService interface {
	ListMentees(ctx context.Context, filter mentee.Filter) ([]mentee.Mentee, error)
	GetMentee(ctx context.Context, id int64) (*mentee.Mentee, error)
	CreateMentee(ctx context.Context, m *mentee.Mentee) (*mentee.Mentee, error)
	UpdateMentee(ctx context.Context, id int64, m *mentee.Mentee) (*mentee.Mentee, error)
	DeleteMentee(ctx context.Context, id int64) error
}

// InvoiceService defines the use cases for invoices.
type InvoiceService interface {
	ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error)
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, inv *invoice.Invoice) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// ReceiptService defines the use cases for receipts. An attached document
// must exist.
type ReceiptService interface {
	ListReceipts(ctx context.Context, filter receipt.Filter) ([]receipt.Receipt, error)
	GetReceipt(ctx context.Context, id int64) (*receipt.Receipt, error)
	CreateReceipt(ctx context.Context, r *receipt.Receipt) (*receipt.Receipt, error)
	UpdateReceipt(ctx context.Context, id int64, r *receipt.Receipt) (*receipt.Receipt, error)
	DeleteReceipt(ctx context.Context, id int64) error
}

// InventoryService defines the use cases for inventory. Returned items carry
// their derived StockStatus.
type InventoryService interface {
	ListItems(ctx context.Context, filter inventory.Filter) ([]inventory.Item, error)
	GetItem(ctx context.Context, id int64) (*inventory.Item, error)
	CreateItem(ctx context.Context, it *inventory.Item) (*inventory.Item, error)
	UpdateItem(ctx context.Context, id int64, it *inventory.Item) (*inventory.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// DocumentService defines the use cases for uploaded documents.
type DocumentService interface {
	ListDocuments(ctx context.Context, filter document.Filter) ([]document.Document, error)
	GetDocument(ctx context.Context, id int64) (*document.Document, error)
	// Upload checks the file against its class rule, stores the content and
	// records the metadata. ContentType and Size are derived from content.
	Upload(ctx context.Context, d *document.Document, content io.Reader) (*document.Document, error)
	// Download returns the metadata and an open reader the caller closes.
	Download(ctx context.Context, id int64) (*document.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// AuthService defines login, logout and token verification.
type AuthService interface {
	// Login returns domain.ErrUnauthorized for unknown email or wrong password.
	Login(ctx context.Context, creds user.Credentials) (*Session, error)
	Logout(ctx context.Context, claims Claims) error
	// Authenticate verifies the token and rejects revoked ones.
	Authenticate(ctx context.Context, token string) (Claims, error)
	// EnsureAdmin creates the admin account unless the email is taken.
	// created reports whether a new account was written.
	EnsureAdmin(ctx context.Context, name, email, password string) (u *user.User, created bool, err error)
}

// CategoryCounts counts records per status category.
type CategoryCounts map[status.Category]int

// Dashboard summarises records per entity type.
type Dashboard struct {
	Counts      map[status.EntityType]CategoryCounts
	Staff       int
	Documents   int
	GeneratedAt time.Time
}

// DashboardService computes the dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
}
