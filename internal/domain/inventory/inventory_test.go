package inventory

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
)

func TestStockRules_Evaluate(t *testing.T) {
	t.Parallel()

	rules := MustDefaultRules()

	tests := []struct {
		name string
		item Item
		want string
	}{
		{name: "empty shelf", item: Item{Quantity: 0, ReorderLevel: 5, MaxLevel: 50}, want: status.StockOut},
		{name: "at reorder level", item: Item{Quantity: 5, ReorderLevel: 5, MaxLevel: 50}, want: status.StockLow},
		{name: "below reorder level", item: Item{Quantity: 2, ReorderLevel: 5}, want: status.StockLow},
		{name: "healthy", item: Item{Quantity: 20, ReorderLevel: 5, MaxLevel: 50}, want: status.StockIn},
		{name: "at max level", item: Item{Quantity: 50, ReorderLevel: 5, MaxLevel: 50}, want: status.StockIn},
		{name: "over max level", item: Item{Quantity: 51, ReorderLevel: 5, MaxLevel: 50}, want: status.StockOver},
		{name: "no max level", item: Item{Quantity: 1000, ReorderLevel: 5, MaxLevel: 0}, want: status.StockIn},
		{name: "out wins over low", item: Item{Quantity: 0, ReorderLevel: 0}, want: status.StockOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rules.Evaluate(&tt.item)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%+v) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func TestNewStockRules_Custom(t *testing.T) {
	t.Parallel()

	rules, err := NewStockRules([]Rule{
		{Status: status.StockLow, Expression: "quantity < reorder_level * 2"},
	})
	if err != nil {
		t.Fatalf("NewStockRules() error = %v", err)
	}

	got, err := rules.Evaluate(&Item{Quantity: 7, ReorderLevel: 4})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got != status.StockLow {
		t.Errorf("Evaluate() = %q, want low-stock", got)
	}
}

func TestNewStockRules_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rules   []Rule
		wantErr string
	}{
		{name: "unknown status", rules: []Rule{{Status: "discontinued", Expression: "true"}}, wantErr: "unknown stock status"},
		{name: "syntax error", rules: []Rule{{Status: status.StockLow, Expression: "quantity <="}}, wantErr: "compiling"},
		{name: "unknown variable", rules: []Rule{{Status: status.StockLow, Expression: "stock < 3"}}, wantErr: "compiling"},
		{name: "non-bool result", rules: []Rule{{Status: status.StockLow, Expression: "quantity + 1"}}, wantErr: "must evaluate to bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewStockRules(tt.rules)
			if err == nil {
				t.Fatal("NewStockRules() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestStockRules_ConcurrentEvaluate(t *testing.T) {
	t.Parallel()

	rules := MustDefaultRules()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := rules.Evaluate(&Item{Quantity: i + 10, ReorderLevel: 5, MaxLevel: 100})
			if err != nil || got != status.StockIn {
				t.Errorf("Evaluate() = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestItem_Validate(t *testing.T) {
	t.Parallel()

	reg := catalog.Default()
	valid := Item{Name: "Laptop stand", SKU: "LS-001", Category: "electronics", Quantity: 3, ReorderLevel: 2, MaxLevel: 10}
	if err := valid.Validate(reg); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	bad := Item{Name: "", SKU: " ", Category: "snacks", Quantity: -1, UnitCostCents: -5}
	err := bad.Validate(reg)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, f := range []string{"name", "sku", "category", "quantity", "unit_cost_cents"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("missing field %q in %v", f, verr.Fields)
		}
	}
	if _, ok := verr.Fields["reorder_level"]; ok {
		t.Errorf("reorder_level flagged unexpectedly: %v", verr.Fields)
	}
}
