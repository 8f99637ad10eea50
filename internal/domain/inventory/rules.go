package inventory

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
)

// Rule maps a CEL boolean expression over quantity, reorder_level and
// max_level to a stock status.
type Rule struct {
	Status     string
	Expression string
}

// DefaultRules returns the stock rules used when none are configured.
func DefaultRules() []Rule {
	return []Rule{
		{Status: status.StockOut, Expression: "quantity <= 0"},
		{Status: status.StockLow, Expression: "quantity <= reorder_level"},
		{Status: status.StockOver, Expression: "max_level > 0 && quantity > max_level"},
	}
}

type compiledRule struct {
	status  string
	program cel.Program
}

// StockRules evaluates ordered rules; the first true rule wins and no match
// yields in-stock. Safe for concurrent use.
type StockRules struct {
	rules []compiledRule
}

// NewStockRules compiles rules. Every status must be a stock status and
// every expression must type-check to bool.
func NewStockRules(rules []Rule) (*StockRules, error) {
	env, err := cel.NewEnv(
		cel.Variable("quantity", cel.IntType),
		cel.Variable("reorder_level", cel.IntType),
		cel.Variable("max_level", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("creating CEL environment: %w", err)
	}

	var errs []error
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		if !status.Known(status.Stock, r.Status) {
			errs = append(errs, fmt.Errorf("rule %d: unknown stock status %q", i, r.Status))
			continue
		}
		ast, issues := env.Compile(r.Expression)
		if issues != nil && issues.Err() != nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): compiling %q: %w", i, r.Status, r.Expression, issues.Err()))
			continue
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			errs = append(errs, fmt.Errorf("rule %d (%s): expression %q must evaluate to bool, got %v",
				i, r.Status, r.Expression, ast.OutputType()))
			continue
		}
		prg, err := env.Program(ast)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): building program: %w", i, r.Status, err))
			continue
		}
		compiled = append(compiled, compiledRule{status: r.Status, program: prg})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &StockRules{rules: compiled}, nil
}

// MustDefaultRules compiles DefaultRules and panics on failure.
func MustDefaultRules() *StockRules {
	sr, err := NewStockRules(DefaultRules())
	if err != nil {
		panic(err)
	}
	return sr
}

// Evaluate returns the stock status of it.
func (sr *StockRules) Evaluate(it *Item) (string, error) {
	vars := map[string]any{
		"quantity":      int64(it.Quantity),
		"reorder_level": int64(it.ReorderLevel),
		"max_level":     int64(it.MaxLevel),
	}
	for _, r := range sr.rules {
		out, _, err := r.program.Eval(vars)
		if err != nil {
			return "", fmt.Errorf("evaluating %s rule: %w", r.status, err)
		}
		if matched, ok := out.Value().(bool); ok && matched {
			return r.status, nil
		}
	}
	return status.StockIn, nil
}
