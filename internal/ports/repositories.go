package ports

import (
	"context"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
)

// StaffRepository persists staff members.
// Get, Update and Delete return domain.ErrNotFound for an unknown ID.
// Create and Update return domain.ErrConflict when the email is taken.
type StaffRepository interface {
	List(ctx context.Context, filter staff.Filter) ([]staff.Staff, error)
	Get(ctx context.Context, id int64) (*staff.Staff, error)
	Create(ctx context.Context, s *staff.Staff) (*staff.Staff, error)
	Update(ctx context.Context, id int64, s *staff.Staff) (*staff.Staff, error)
	Delete(ctx context.Context, id int64) error
}

// MenteeRepository persists mentees.
type MenteeRepository interface {
	List(ctx context.Context, filter mentee.Filter) ([]mentee.Mentee, error)
	Get(ctx context.Context, id int64) (*mentee.Mentee, error)
	Create(ctx context.Context, m *mentee.Mentee) (*mentee.Mentee, error)
	Update(ctx context.Context, id int64, m *mentee.Mentee) (*mentee.Mentee, error)
	Delete(ctx context.Context, id int64) error
}

// InvoiceRepository persists invoices together with their line items.
// Invoice numbers are unique; a duplicate yields domain.ErrConflict.
type InvoiceRepository interface {
	List(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error)
	Get(ctx context.Context, id int64) (*invoice.Invoice, error)
	Create(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error)
	Update(ctx context.Context, id int64, inv *invoice.Invoice) (*invoice.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// ReceiptRepository persists receipts together with their line items.
type ReceiptRepository interface {
	List(ctx context.Context, filter receipt.Filter) ([]receipt.Receipt, error)
	Get(ctx context.Context, id int64) (*receipt.Receipt, error)
	Create(ctx context.Context, r *receipt.Receipt) (*receipt.Receipt, error)
	Update(ctx context.Context, id int64, r *receipt.Receipt) (*receipt.Receipt, error)
	Delete(ctx context.Context, id int64) error
}

// InventoryRepository persists inventory items. Implementations ignore
// Filter.StockStatus and never store Item.StockStatus.
// SKUs are unique; a duplicate yields domain.ErrConflict.
type InventoryRepository interface {
	List(ctx context.Context, filter inventory.Filter) ([]inventory.Item, error)
	Get(ctx context.Context, id int64) (*inventory.Item, error)
	Create(ctx context.Context, it *inventory.Item) (*inventory.Item, error)
	Update(ctx context.Context, id int64, it *inventory.Item) (*inventory.Item, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentRepository persists document metadata. Content lives in a BlobStore.
type DocumentRepository interface {
	List(ctx context.Context, filter document.Filter) ([]document.Document, error)
	Get(ctx context.Context, id int64) (*document.Document, error)
	Create(ctx context.Context, d *document.Document) (*document.Document, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository persists login accounts. Emails are unique.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*user.User, error)
	// GetByEmail returns domain.ErrNotFound when no account has the email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
}
