package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StaffRepository     = (*StaffRepository)(nil)
	_ ports.MenteeRepository    = (*MenteeRepository)(nil)
	_ ports.InvoiceRepository   = (*InvoiceRepository)(nil)
	_ ports.ReceiptRepository   = (*ReceiptRepository)(nil)
	_ ports.InventoryRepository = (*InventoryRepository)(nil)
	_ ports.DocumentRepository  = (*DocumentRepository)(nil)
	_ ports.UserRepository      = (*UserRepository)(nil)
)

// Store bundles one repository per record type.
type Store struct {
	Staff     *StaffRepository
	Mentees   *MenteeRepository
	Invoices  *InvoiceRepository
	Receipts  *ReceiptRepository
	Inventory *InventoryRepository
	Documents *DocumentRepository
	Users     *UserRepository
}

// New returns an empty Store. Deleting a staff member or a document clears
// the mentor and document references that pointed at it.
func New() *Store {
	s := &Store{
		Staff:     NewStaffRepository(),
		Mentees:   NewMenteeRepository(),
		Invoices:  NewInvoiceRepository(),
		Receipts:  NewReceiptRepository(),
		Inventory: NewInventoryRepository(),
		Documents: NewDocumentRepository(),
		Users:     NewUserRepository(),
	}
	s.Staff.onDelete = s.Mentees.detachMentor
	s.Documents.onDelete = s.Receipts.detachDocument
	return s
}

func refersTo(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}

func clonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// numberItems gives line items their position as ID.
func numberItems(items []lineitem.Item) []lineitem.Item {
	out := slices.Clone(items)
	for i := range out {
		out[i].ID = int64(i + 1)
	}
	return out
}

// --- staff ---

// StaffRepository stores staff members. Emails are unique, ignoring case.
type StaffRepository struct {
	t        *table[staff.Staff]
	onDelete func(id int64)
}

// NewStaffRepository returns an empty StaffRepository.
func NewStaffRepository() *StaffRepository {
	return &StaffRepository{t: newTable("staff member", rowHook[staff.Staff]{
		stamp: func(s *staff.Staff, id int64, created, updated time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, created, updated
		},
		createdAt: func(s *staff.Staff) time.Time { return s.CreatedAt },
		unique:    func(s *staff.Staff) string { return strings.ToLower(s.Email) },
	})}
}

func (r *StaffRepository) List(_ context.Context, f staff.Filter) ([]staff.Staff, error) {
	return r.t.list(f.Matches), nil
}

func (r *StaffRepository) Get(_ context.Context, id int64) (*staff.Staff, error) {
	return r.t.get(id)
}

func (r *StaffRepository) Create(_ context.Context, s *staff.Staff) (*staff.Staff, error) {
	return r.t.create(s)
}

func (r *StaffRepository) Update(_ context.Context, id int64, s *staff.Staff) (*staff.Staff, error) {
	return r.t.update(id, s)
}

func (r *StaffRepository) Delete(_ context.Context, id int64) error {
	if err := r.t.delete(id); err != nil {
		return err
	}
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

// --- mentees ---

// MenteeRepository stores mentees.
type MenteeRepository struct{ t *table[mentee.Mentee] }

// NewMenteeRepository returns an empty MenteeRepository.
func NewMenteeRepository() *MenteeRepository {
	return &MenteeRepository{t: newTable("mentee", rowHook[mentee.Mentee]{
		stamp: func(m *mentee.Mentee, id int64, created, updated time.Time) {
			m.ID, m.CreatedAt, m.UpdatedAt = id, created, updated
		},
		createdAt: func(m *mentee.Mentee) time.Time { return m.CreatedAt },
		clone: func(m mentee.Mentee) mentee.Mentee {
			m.MentorID = clonePtr(m.MentorID)
			return m
		},
	})}
}

func (r *MenteeRepository) List(_ context.Context, f mentee.Filter) ([]mentee.Mentee, error) {
	return r.t.list(f.Matches), nil
}

func (r *MenteeRepository) Get(_ context.Context, id int64) (*mentee.Mentee, error) {
	return r.t.get(id)
}

func (r *MenteeRepository) Create(_ context.Context, m *mentee.Mentee) (*mentee.Mentee, error) {
	return r.t.create(m)
}

func (r *MenteeRepository) Update(_ context.Context, id int64, m *mentee.Mentee) (*mentee.Mentee, error) {
	return r.t.update(id, m)
}

func (r *MenteeRepository) detachMentor(staffID int64) {
	r.t.detach(
		func(m *mentee.Mentee) bool { return refersTo(m.MentorID, staffID) },
		func(m *mentee.Mentee) { m.MentorID = nil },
	)
}

func (r *MenteeRepository) Delete(_ context.Context, id int64) error {
	return r.t.delete(id)
}

// --- invoices ---

// InvoiceRepository stores invoices. Numbers are unique.
type InvoiceRepository struct{ t *table[invoice.Invoice] }

// NewInvoiceRepository returns an empty InvoiceRepository.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{t: newTable("invoice", rowHook[invoice.Invoice]{
		stamp: func(inv *invoice.Invoice, id int64, created, updated time.Time) {
			inv.ID, inv.CreatedAt, inv.UpdatedAt = id, created, updated
			inv.Items = numberItems(inv.Items)
		},
		createdAt: func(inv *invoice.Invoice) time.Time { return inv.CreatedAt },
		unique:    func(inv *invoice.Invoice) string { return inv.Number },
		clone: func(inv invoice.Invoice) invoice.Invoice {
			inv.Items = slices.Clone(inv.Items)
			return inv
		},
	})}
}

func (r *InvoiceRepository) List(_ context.Context, f invoice.Filter) ([]invoice.Invoice, error) {
	return r.t.list(f.Matches), nil
}

func (r *InvoiceRepository) Get(_ context.Context, id int64) (*invoice.Invoice, error) {
	return r.t.get(id)
}

func (r *InvoiceRepository) Create(_ context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	return r.t.create(inv)
}

func (r *InvoiceRepository) Update(_ context.Context, id int64, inv *invoice.Invoice) (*invoice.Invoice, error) {
	return r.t.update(id, inv)
}

func (r *InvoiceRepository) Delete(_ context.Context, id int64) error {
	return r.t.delete(id)
}

// --- receipts ---

// ReceiptRepository stores receipts.
type ReceiptRepository struct{ t *table[receipt.Receipt] }

// NewReceiptRepository returns an empty ReceiptRepository.
func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{t: newTable("receipt", rowHook[receipt.Receipt]{
		stamp: func(rc *receipt.Receipt, id int64, created, updated time.Time) {
			rc.ID, rc.CreatedAt, rc.UpdatedAt = id, created, updated
			rc.Items = numberItems(rc.Items)
		},
		createdAt: func(rc *receipt.Receipt) time.Time { return rc.CreatedAt },
		clone: func(rc receipt.Receipt) receipt.Receipt {
			rc.Items = slices.Clone(rc.Items)
			rc.DocumentID = clonePtr(rc.DocumentID)
			return rc
		},
	})}
}

func (r *ReceiptRepository) List(_ context.Context, f receipt.Filter) ([]receipt.Receipt, error) {
	return r.t.list(f.Matches), nil
}

func (r *ReceiptRepository) Get(_ context.Context, id int64) (*receipt.Receipt, error) {
	return r.t.get(id)
}

func (r *ReceiptRepository) Create(_ context.Context, rc *receipt.Receipt) (*receipt.Receipt, error) {
	return r.t.create(rc)
}

func (r *ReceiptRepository) Update(_ context.Context, id int64, rc *receipt.Receipt) (*receipt.Receipt, error) {
	return r.t.update(id, rc)
}

func (r *ReceiptRepository) detachDocument(documentID int64) {
	r.t.detach(
		func(rc *receipt.Receipt) bool { return refersTo(rc.DocumentID, documentID) },
		func(rc *receipt.Receipt) { rc.DocumentID = nil },
	)
}

func (r *ReceiptRepository) Delete(_ context.Context, id int64) error {
	return r.t.delete(id)
}

// --- inventory ---

// InventoryRepository stores inventory items. SKUs are unique. The derived
// stock status is never stored.
type InventoryRepository struct{ t *table[inventory.Item] }

// NewInventoryRepository returns an empty InventoryRepository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{t: newTable("inventory item", rowHook[inventory.Item]{
		stamp: func(it *inventory.Item, id int64, created, updated time.Time) {
			it.ID, it.CreatedAt, it.UpdatedAt = id, created, updated
			it.StockStatus = ""
		},
		createdAt: func(it *inventory.Item) time.Time { return it.CreatedAt },
		unique:    func(it *inventory.Item) string { return it.SKU },
	})}
}

func (r *InventoryRepository) List(_ context.Context, f inventory.Filter) ([]inventory.Item, error) {
	return r.t.list(func(it *inventory.Item) bool {
		return f.Category == "" || it.Category == f.Category
	}), nil
}

func (r *InventoryRepository) Get(_ context.Context, id int64) (*inventory.Item, error) {
	return r.t.get(id)
}

func (r *InventoryRepository) Create(_ context.Context, it *inventory.Item) (*inventory.Item, error) {
	return r.t.create(it)
}

func (r *InventoryRepository) Update(_ context.Context, id int64, it *inventory.Item) (*inventory.Item, error) {
	return r.t.update(id, it)
}

func (r *InventoryRepository) Delete(_ context.Context, id int64) error {
	return r.t.delete(id)
}

// --- documents ---

// DocumentRepository stores document metadata.
type DocumentRepository struct {
	t        *table[document.Document]
	onDelete func(id int64)
}

// NewDocumentRepository returns an empty DocumentRepository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{t: newTable("document", rowHook[document.Document]{
		stamp: func(d *document.Document, id int64, created, updated time.Time) {
			d.ID, d.CreatedAt, d.UpdatedAt = id, created, updated
		},
		createdAt: func(d *document.Document) time.Time { return d.CreatedAt },
		unique:    func(d *document.Document) string { return d.StorageKey },
	})}
}

func (r *DocumentRepository) List(_ context.Context, f document.Filter) ([]document.Document, error) {
	return r.t.list(f.Matches), nil
}

func (r *DocumentRepository) Get(_ context.Context, id int64) (*document.Document, error) {
	return r.t.get(id)
}

func (r *DocumentRepository) Create(_ context.Context, d *document.Document) (*document.Document, error) {
	return r.t.create(d)
}

func (r *DocumentRepository) Delete(_ context.Context, id int64) error {
	if err := r.t.delete(id); err != nil {
		return err
	}
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

// --- users ---

// UserRepository stores accounts. Emails are unique, ignoring case.
type UserRepository struct{ t *table[user.User] }

// NewUserRepository returns an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable("user", rowHook[user.User]{
		stamp: func(u *user.User, id int64, created, updated time.Time) {
			u.ID, u.CreatedAt, u.UpdatedAt = id, created, updated
		},
		createdAt: func(u *user.User) time.Time { return u.CreatedAt },
		unique:    func(u *user.User) string { return strings.ToLower(u.Email) },
	})}
}

func (r *UserRepository) Get(_ context.Context, id int64) (*user.User, error) {
	return r.t.get(id)
}

// GetByEmail matches emails case-insensitively.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.t.find(func(u *user.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	return u, nil
}

func (r *UserRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	return r.t.create(u)
}
