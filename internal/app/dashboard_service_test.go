package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/mocks"
)

type dashboardMocks struct {
	staff     *mocks.MockStaffRepository
	mentees   *mocks.MockMenteeRepository
	invoices  *mocks.MockInvoiceRepository
	receipts  *mocks.MockReceiptRepository
	inventory *mocks.MockInventoryRepository
	documents *mocks.MockDocumentRepository
}

func newDashboard(t *testing.T) (*DashboardService, dashboardMocks) {
	t.Helper()
	m := dashboardMocks{
		staff:     mocks.NewMockStaffRepository(t),
		mentees:   mocks.NewMockMenteeRepository(t),
		invoices:  mocks.NewMockInvoiceRepository(t),
		receipts:  mocks.NewMockReceiptRepository(t),
		inventory: mocks.NewMockInventoryRepository(t),
		documents: mocks.NewMockDocumentRepository(t),
	}
	svc := NewDashboardService(DashboardRepositories{
		Staff:     m.staff,
		Mentees:   m.mentees,
		Invoices:  m.invoices,
		Receipts:  m.receipts,
		Inventory: m.inventory,
		Documents: m.documents,
	}, nil, discardLogger())
	svc.now = func() time.Time { return day }
	return svc, m
}

func TestDashboardService_Summary(t *testing.T) {
	t.Parallel()
	svc, m := newDashboard(t)

	m.staff.EXPECT().List(mock.Anything, staff.Filter{}).Return(make([]staff.Staff, 3), nil)
	m.documents.EXPECT().List(mock.Anything, document.Filter{}).Return(make([]document.Document, 2), nil)
	m.mentees.EXPECT().List(mock.Anything, mentee.Filter{}).Return([]mentee.Mentee{
		{Status: "active"}, {Status: "active"}, {Status: "on-hold"}, {Status: "dropped"}, {Status: "completed"},
	}, nil)
	m.invoices.EXPECT().List(mock.Anything, invoice.Filter{}).Return([]invoice.Invoice{
		{Status: "paid"}, {Status: "overdue"}, {Status: "cancelled"}, {Status: "legacy"},
	}, nil)
	m.receipts.EXPECT().List(mock.Anything, receipt.Filter{}).Return([]receipt.Receipt{
		{Status: "approved"}, {Status: "pending"},
	}, nil)
	m.inventory.EXPECT().List(mock.Anything, inventory.Filter{}).Return([]inventory.Item{
		stock("A", 0, 5, 0), stock("B", 2, 5, 0), stock("C", 100, 5, 50), stock("D", 20, 5, 50),
	}, nil)

	d, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, d.Staff)
	assert.Equal(t, 2, d.Documents)
	assert.Equal(t, day, d.GeneratedAt)

	mentees := d.Counts[status.Mentee]
	assert.Equal(t, 2, mentees[status.Positive])
	assert.Equal(t, 1, mentees[status.Warning])
	assert.Equal(t, 1, mentees[status.Negative])
	assert.Equal(t, 1, mentees[status.Info])
	assert.Equal(t, 0, mentees[status.Neutral])

	invoices := d.Counts[status.Invoice]
	assert.Equal(t, 2, invoices[status.Neutral], "cancelled and unknown statuses are neutral")
	assert.Equal(t, 1, invoices[status.Negative])

	stockCounts := d.Counts[status.Stock]
	assert.Equal(t, 1, stockCounts[status.Positive])
	assert.Equal(t, 1, stockCounts[status.Warning])
	assert.Equal(t, 1, stockCounts[status.Negative])
	assert.Equal(t, 1, stockCounts[status.Info])

	assert.Len(t, d.Counts[status.Receipt], len(status.Categories()))
}

func TestDashboardService_Summary_StoreFailure(t *testing.T) {
	t.Parallel()
	svc, m := newDashboard(t)

	m.staff.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	m.documents.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	m.mentees.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)
	m.invoices.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	m.receipts.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	m.inventory.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
