package status_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entity status.EntityType
		value  string
		want   status.Category
	}{
		{status.Invoice, "paid", status.Positive},
		{status.Invoice, "pending", status.Warning},
		{status.Invoice, "overdue", status.Negative},
		{status.Invoice, "cancelled", status.Neutral},
		{status.Receipt, "approved", status.Positive},
		{status.Receipt, "pending", status.Warning},
		{status.Receipt, "rejected", status.Negative},
		{status.Mentee, "active", status.Positive},
		{status.Mentee, "completed", status.Info},
		{status.Mentee, "on-hold", status.Warning},
		{status.Mentee, "dropped", status.Negative},
		{status.Stock, "in-stock", status.Positive},
		{status.Stock, "low-stock", status.Warning},
		{status.Stock, "out-of-stock", status.Negative},
		{status.Stock, "overstock", status.Info},
	}

	for _, tt := range tests {
		t.Run(string(tt.entity)+"/"+tt.value, func(t *testing.T) {
			t.Parallel()
			if got := status.Classify(tt.entity, tt.value); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.entity, tt.value, got, tt.want)
			}
		})
	}
}

func TestClassify_UnknownIsNeutral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity status.EntityType
		value  string
	}{
		{name: "unknown entity", entity: "widget", value: "paid"},
		{name: "unknown status", entity: status.Invoice, value: "archived"},
		{name: "case sensitive", entity: status.Invoice, value: "Paid"},
		{name: "status from another entity", entity: status.Receipt, value: "overdue"},
		{name: "empty", entity: "", value: ""},
		{name: "padded value", entity: status.Mentee, value: " active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := status.Classify(tt.entity, tt.value); got != status.Neutral {
				t.Errorf("Classify(%q, %q) = %q, want neutral", tt.entity, tt.value, got)
			}
		})
	}
}

func TestKnownAndStatuses(t *testing.T) {
	t.Parallel()

	want := []string{"active", "completed", "on-hold", "dropped"}
	if got := status.Statuses(status.Mentee); !slices.Equal(got, want) {
		t.Errorf("Statuses(mentee) = %v, want %v", got, want)
	}
	if got := status.Statuses("widget"); got != nil {
		t.Errorf("Statuses(widget) = %v, want nil", got)
	}

	// cancelled is neutral but still a recognised invoice status.
	if !status.Known(status.Invoice, "cancelled") {
		t.Error("Known(invoice, cancelled) = false, want true")
	}
	if status.Known(status.Invoice, "archived") {
		t.Error("Known(invoice, archived) = true, want false")
	}

	got := status.Statuses(status.Stock)
	got[0] = "mutated"
	if status.Statuses(status.Stock)[0] != "in-stock" {
		t.Error("Statuses returned a slice that aliases the table")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	d := status.Describe(status.Mentee, "on-hold")
	want := status.Descriptor{
		EntityType: status.Mentee,
		Status:     "on-hold",
		Category:   status.Warning,
		Label:      "On Hold",
		Badge:      "warning",
		Icon:       "clock",
	}
	if d != want {
		t.Errorf("Describe(mentee, on-hold) = %+v, want %+v", d, want)
	}

	unknown := status.Describe("widget", "in_review")
	if unknown.Category != status.Neutral || unknown.Badge != "secondary" || unknown.Label != "In Review" {
		t.Errorf("Describe(widget, in_review) = %+v, want neutral with label In Review", unknown)
	}
}

func TestDescribe_HintsDependOnlyOnCategory(t *testing.T) {
	t.Parallel()

	paid := status.Describe(status.Invoice, "paid")
	approved := status.Describe(status.Receipt, "approved")
	if paid.Badge != approved.Badge || paid.Icon != approved.Icon {
		t.Errorf("positive hints differ: %+v vs %+v", paid, approved)
	}

	for _, c := range status.Categories() {
		seen := false
		for _, e := range status.EntityTypes() {
			for _, s := range status.Statuses(e) {
				d := status.Describe(e, s)
				if d.Category == c {
					seen = true
					if d.Badge == "" || d.Icon == "" {
						t.Errorf("Describe(%q, %q) has empty hints", e, s)
					}
				}
			}
		}
		if !seen {
			t.Errorf("category %q has no status in the table", c)
		}
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"paid", "Paid"},
		{"on-hold", "On Hold"},
		{"out-of-stock", "Out Of Stock"},
		{"in_review", "In Review"},
		{"", ""},
		{"--", ""},
	}

	for _, tt := range tests {
		if got := status.Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if status.Classify(status.Invoice, "overdue") != status.Negative {
				t.Error("Classify result changed under concurrent use")
			}
			_ = status.Describe(status.Stock, "low-stock")
		}()
	}
	wg.Wait()
}
