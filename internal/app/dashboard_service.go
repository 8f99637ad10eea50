package app

import (
	"context"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
	"github.com/jsamuelsen11/mentorship-admin/internal/app/fanout"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

const dashboardWorkers = 4

// DashboardRepositories groups the stores the dashboard reads.
type DashboardRepositories struct {
	Staff     ports.StaffRepository
	Mentees   ports.MenteeRepository
	Invoices  ports.InvoiceRepository
	Receipts  ports.ReceiptRepository
	Inventory ports.InventoryRepository
	Documents ports.DocumentRepository
}

// DashboardService implements ports.DashboardService. Each store is queried
// concurrently and its records are counted per status category.
type DashboardService struct {
	repos   DashboardRepositories
	rules   *inventory.StockRules
	logger  *slog.Logger
	workers int
	now     func() time.Time
}

// NewDashboardService creates a DashboardService. A nil rules value uses
// inventory.DefaultRules.
func NewDashboardService(repos DashboardRepositories, rules *inventory.StockRules, logger *slog.Logger) *DashboardService {
	if rules == nil {
		rules = inventory.MustDefaultRules()
	}
	return &DashboardService{
		repos:   repos,
		rules:   rules,
		logger:  orDiscard(logger),
		workers: dashboardWorkers,
		now:     time.Now,
	}
}

type dashboardTask struct {
	name string
	run  func(ctx context.Context, summary *appctx.SafeRef[ports.Dashboard]) error
}

// Summary counts every record type. Any failing store fails the summary.
func (s *DashboardService) Summary(ctx context.Context) (*ports.Dashboard, error) {
	s.logger.InfoContext(ctx, "computing dashboard")

	summary := appctx.NewRef(ports.Dashboard{
		Counts:      make(map[status.EntityType]ports.CategoryCounts, len(status.EntityTypes())),
		GeneratedAt: s.now().UTC(),
	})

	results := fanout.Run(ctx, s.workers, s.tasks(), func(ctx context.Context, t dashboardTask) (string, error) {
		return t.name, t.run(ctx, summary)
	})
	if _, err := fanout.Values(results); err != nil {
		logFailure(ctx, s.logger, "failed to compute dashboard", "Summary", err)
		return nil, err
	}

	d := summary.Get()
	return &d, nil
}

func (s *DashboardService) tasks() []dashboardTask {
	return []dashboardTask{
		{name: "staff", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Staff.List(ctx, staff.Filter{})
			if err != nil {
				return err
			}
			ref.Update(func(d *ports.Dashboard) { d.Staff = len(list) })
			return nil
		}},
		{name: "documents", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Documents.List(ctx, document.Filter{})
			if err != nil {
				return err
			}
			ref.Update(func(d *ports.Dashboard) { d.Documents = len(list) })
			return nil
		}},
		{name: "mentees", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Mentees.List(ctx, mentee.Filter{})
			if err != nil {
				return err
			}
			counts := newCategoryCounts()
			for i := range list {
				counts[list[i].Category()]++
			}
			setCounts(ref, status.Mentee, counts)
			return nil
		}},
		{name: "invoices", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Invoices.List(ctx, invoice.Filter{})
			if err != nil {
				return err
			}
			counts := newCategoryCounts()
			for i := range list {
				counts[list[i].Category()]++
			}
			setCounts(ref, status.Invoice, counts)
			return nil
		}},
		{name: "receipts", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Receipts.List(ctx, receipt.Filter{})
			if err != nil {
				return err
			}
			counts := newCategoryCounts()
			for i := range list {
				counts[list[i].StatusCategory()]++
			}
			setCounts(ref, status.Receipt, counts)
			return nil
		}},
		{name: "inventory", run: func(ctx context.Context, ref *appctx.SafeRef[ports.Dashboard]) error {
			list, err := s.repos.Inventory.List(ctx, inventory.Filter{})
			if err != nil {
				return err
			}
			counts := newCategoryCounts()
			for i := range list {
				st, err := s.rules.Evaluate(&list[i])
				if err != nil {
					return err
				}
				counts[status.Classify(status.Stock, st)]++
			}
			setCounts(ref, status.Stock, counts)
			return nil
		}},
	}
}

// newCategoryCounts returns counts with every category present at zero.
func newCategoryCounts() ports.CategoryCounts {
	counts := make(ports.CategoryCounts, len(status.Categories()))
	for _, c := range status.Categories() {
		counts[c] = 0
	}
	return counts
}

func setCounts(ref *appctx.SafeRef[ports.Dashboard], e status.EntityType, counts ports.CategoryCounts) {
	ref.Update(func(d *ports.Dashboard) { d.Counts[e] = counts })
}
