package app

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
)

var (
	testRegistry = catalog.Default()
	day          = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func int64Ptr(v int64) *int64 { return &v }

func validStaff() *staff.Staff {
	return &staff.Staff{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.org",
		Phone:     "+1 (555) 010-2000",
		Role:      catalog.RoleMentor,
		Position:  "Senior Mentor",
		Active:    true,
	}
}

func validMentee() *mentee.Mentee {
	return &mentee.Mentee{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.org",
		MentorID:  int64Ptr(7),
		Program:   "Backend Foundations",
		Status:    "active",
		StartDate: day,
	}
}

func items() []lineitem.Item {
	return []lineitem.Item{
		{Description: "Workshop", Quantity: 2, UnitPriceCents: 15000},
		{Description: "Materials", Quantity: 1, UnitPriceCents: 2500},
	}
}

func validInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		Number:     "INV-2025-001",
		ClientName: "Acme Foundation",
		IssueDate:  day,
		DueDate:    day.AddDate(0, 0, 30),
		Status:     "pending",
		Items:      items(),
	}
}

func validReceipt() *receipt.Receipt {
	return &receipt.Receipt{
		Vendor:       "City Taxi",
		PurchaseDate: day,
		Category:     "travel",
		Status:       "pending",
		Items:        items(),
	}
}

func validItem() *inventory.Item {
	return &inventory.Item{
		Name:          "Laptop stand",
		SKU:           "EL-0042",
		Category:      "electronics",
		Quantity:      12,
		ReorderLevel:  5,
		MaxLevel:      40,
		UnitCostCents: 3999,
		Location:      "Store room B",
	}
}

func validDocument() *document.Document {
	return &document.Document{
		Title:      "Volunteer handbook",
		Class:      catalog.ClassDocument,
		Category:   "policies",
		FileName:   "handbook.txt",
		UploadedBy: 1,
	}
}
