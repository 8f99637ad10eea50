package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
)

func TestStaffRepository_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewStaffRepository()

	created, err := repo.Create(ctx, &staff.Staff{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "mentor", Active: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	got.Position = "Lead"
	updated, err := repo.Update(ctx, created.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestStaffRepository_EmailUniqueIgnoringCase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewStaffRepository()

	first, err := repo.Create(ctx, &staff.Staff{Email: "ada@example.com"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &staff.Staff{Email: "grace@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &staff.Staff{Email: "ADA@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Update(ctx, second.ID, &staff.Staff{Email: "Ada@Example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Updating a row to its own key is not a clash.
	_, err = repo.Update(ctx, first.ID, &staff.Staff{Email: "ada@example.com", Position: "Lead"})
	assert.NoError(t, err)
}

func TestStaffRepository_ListFiltersAndOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewStaffRepository()
	for _, s := range []staff.Staff{
		{Email: "a@example.com", Role: "mentor", Active: true},
		{Email: "b@example.com", Role: "admin", Active: true},
		{Email: "c@example.com", Role: "mentor", Active: false},
	} {
		_, err := repo.Create(ctx, &s)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, staff.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})

	active := true
	mentors, err := repo.List(ctx, staff.Filter{Role: "mentor", Active: &active})
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "a@example.com", mentors[0].Email)
}

func TestMenteeRepository_CopiesMentorID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMenteeRepository()

	mentor := int64(7)
	created, err := repo.Create(ctx, &mentee.Mentee{FirstName: "Tim", MentorID: &mentor})
	require.NoError(t, err)

	mentor = 99
	*created.MentorID = 42

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MentorID)
	assert.Equal(t, int64(7), *got.MentorID)
}

func TestInvoiceRepository_ItemsAndNumber(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewInvoiceRepository()

	in := &invoice.Invoice{
		Number: "INV-001",
		Items: []lineitem.Item{
			{Description: "Workshop", Quantity: 2, UnitPriceCents: 5000},
			{Description: "Materials", Quantity: 1, UnitPriceCents: 1250},
		},
	}
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Items[0].ID)
	assert.Equal(t, int64(2), created.Items[1].ID)
	assert.Equal(t, int64(11250), created.Total())
	assert.Zero(t, in.Items[0].ID, "input must not be modified")

	created.Items[0].Description = "changed"
	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Workshop", got.Items[0].Description)

	_, err = repo.Create(ctx, &invoice.Invoice{Number: "INV-001"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	paid, err := repo.List(ctx, invoice.Filter{Status: "paid"})
	require.NoError(t, err)
	assert.Empty(t, paid)
}

func TestReceiptRepository_DocumentIDCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReceiptRepository()

	docID := int64(3)
	created, err := repo.Create(ctx, &receipt.Receipt{
		Vendor:     "Office Depot",
		Category:   "supplies",
		DocumentID: &docID,
		Items:      []lineitem.Item{{Description: "Paper", Quantity: 1, UnitPriceCents: 899}},
	})
	require.NoError(t, err)
	*created.DocumentID = 10

	list, err := repo.List(ctx, receipt.Filter{Category: "supplies"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), *list[0].DocumentID)
}

func TestInventoryRepository_FiltersByCategoryOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewInventoryRepository()

	_, err := repo.Create(ctx, &inventory.Item{SKU: "BK-1", Category: "books", StockStatus: "low"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &inventory.Item{SKU: "EQ-1", Category: "equipment"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &inventory.Item{SKU: "BK-1", Category: "books"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	books, err := repo.List(ctx, inventory.Filter{Category: "books", StockStatus: "out_of_stock"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "BK-1", books[0].SKU)
	assert.Empty(t, books[0].StockStatus, "stock status is derived, not stored")
}

func TestDocumentRepository_CreateListDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDocumentRepository()

	_, err := repo.Create(ctx, &document.Document{Title: "Scan", Class: catalog.ClassReceipt, StorageKey: "receipt/a.pdf"})
	require.NoError(t, err)
	created, err := repo.Create(ctx, &document.Document{Title: "Handbook", Class: catalog.ClassDocument, StorageKey: "document/b.pdf"})
	require.NoError(t, err)

	receipts, err := repo.List(ctx, document.Filter{Class: catalog.ClassReceipt})
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "Scan", receipts[0].Title)

	require.NoError(t, repo.Delete(ctx, created.ID))
	all, err := repo.List(ctx, document.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, &user.User{Name: "Admin", Email: "Admin@Example.com", Role: catalog.RoleAdmin})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Create(ctx, &user.User{Email: "admin@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTable_UsesClockInUTC(t *testing.T) {
	t.Parallel()

	repo := NewStaffRepository()
	loc := time.FixedZone("UTC+2", 2*60*60)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	repo.t.now = func() time.Time { return fixed }

	created, err := repo.Create(context.Background(), &staff.Staff{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
	assert.True(t, fixed.Equal(created.CreatedAt))
}

func TestTable_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	repo := NewMenteeRepository()
	const n = 50

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), &mentee.Mentee{FirstName: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.List(context.Background(), mentee.Filter{})
	require.NoError(t, err)
	require.Len(t, all, n)
	for i, m := range all {
		assert.Equal(t, int64(i+1), m.ID)
	}
}

func TestNew_ReturnsEmptyStore(t *testing.T) {
	t.Parallel()

	s := New()
	users, err := s.Users.GetByEmail(context.Background(), "a@example.com")
	assert.Nil(t, users)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err := s.Inventory.List(context.Background(), inventory.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStore_DeletingStaffClearsMentor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	mentor, err := s.Staff.Create(ctx, &staff.Staff{Email: "ada@example.com", Role: "mentor"})
	require.NoError(t, err)
	other, err := s.Staff.Create(ctx, &staff.Staff{Email: "grace@example.com", Role: "mentor"})
	require.NoError(t, err)

	mentored, err := s.Mentees.Create(ctx, &mentee.Mentee{FirstName: "Tim", MentorID: &mentor.ID})
	require.NoError(t, err)
	kept, err := s.Mentees.Create(ctx, &mentee.Mentee{FirstName: "Sam", MentorID: &other.ID})
	require.NoError(t, err)

	require.NoError(t, s.Staff.Delete(ctx, mentor.ID))

	got, err := s.Mentees.Get(ctx, mentored.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MentorID)
	assert.Equal(t, mentored.UpdatedAt, got.UpdatedAt)

	byMentor, err := s.Mentees.List(ctx, mentee.Filter{MentorID: &mentor.ID})
	require.NoError(t, err)
	assert.Empty(t, byMentor)

	got, err = s.Mentees.Get(ctx, kept.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MentorID)
	assert.Equal(t, other.ID, *got.MentorID)
}

func TestStore_DeletingDocumentClearsReceiptLink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	doc, err := s.Documents.Create(ctx, &document.Document{Title: "Scan", Class: catalog.ClassReceipt, StorageKey: "receipt/a.pdf"})
	require.NoError(t, err)
	rc, err := s.Receipts.Create(ctx, &receipt.Receipt{
		Vendor:     "Office Depot",
		Category:   "supplies",
		DocumentID: &doc.ID,
		Items:      []lineitem.Item{{Description: "Paper", Quantity: 1, UnitPriceCents: 899}},
	})
	require.NoError(t, err)

	require.NoError(t, s.Documents.Delete(ctx, doc.ID))

	got, err := s.Receipts.Get(ctx, rc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DocumentID)
	assert.Len(t, got.Items, 1)
}

func TestStore_FailedDeleteKeepsReferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	missing := int64(5)
	m, err := s.Mentees.Create(ctx, &mentee.Mentee{FirstName: "Tim", MentorID: &missing})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Staff.Delete(ctx, missing), domain.ErrNotFound)

	got, err := s.Mentees.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MentorID)
	assert.Equal(t, missing, *got.MentorID)
}
