package fintrack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/fintrack/date"
)

// Budget declares a spending cap for one category over a renewal period.
type Budget struct {
	Category string
	Amount   Money // the cap
	Period   date.Period
	Start    date.Date
	End      date.Date // zero when open-ended
}

// Validate checks the budget for correctness before it enters a book.
func (b Budget) Validate() error {
	if b.Category == "" {
		return errors.New("budget category is required")
	}
	if b.Amount.IsNegative() {
		// A zero cap is allowed: the reconciler reports it with a zero
		// utilization instead of dividing by zero.
		return fmt.Errorf("budget amount must not be negative, got %s", b.Amount)
	}
	if b.Start.IsZero() {
		return errors.New("budget start date is required")
	}
	if !b.End.IsZero() && b.End.Before(b.Start) {
		return fmt.Errorf("budget end date %s precedes start date %s", b.End, b.Start)
	}
	return nil
}

// MarshalJSON writes the budget with a stable field order.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", b.Category)
	w.Append("amount", b.Amount.Decimal())
	w.Optional("currency", b.Amount.Currency())
	w.Append("period", b.Period)
	w.Append("start", b.Start)
	if !b.End.IsZero() {
		w.Append("end", b.End)
	}
	return w.MarshalJSON()
}

// BudgetBook holds the declared budgets. At most one budget exists per
// (category, period kind) pair.
type BudgetBook struct {
	budgets []Budget
}

// NewBudgetBook creates an empty budget book.
func NewBudgetBook() *BudgetBook {
	return &BudgetBook{budgets: make([]Budget, 0)}
}

// Set validates and records a budget. Any prior budget for the same
// (category, period kind) pair is replaced in the same operation.
func (bb *BudgetBook) Set(b Budget) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid budget: %w", err)
	}
	bb.budgets = slices.DeleteFunc(bb.budgets, func(x Budget) bool {
		return x.Category == b.Category && x.Period.Kind == b.Period.Kind
	})
	bb.budgets = append(bb.budgets, b)
	return nil
}

// Get returns the budget for a category and period kind, or ErrNotFound.
func (bb *BudgetBook) Get(category string, kind date.PeriodKind) (Budget, error) {
	for _, b := range bb.budgets {
		if b.Category == category && b.Period.Kind == kind {
			return b, nil
		}
	}
	return Budget{}, fmt.Errorf("budget for category %q (%s): %w", category, kind, ErrNotFound)
}

// All returns all declared budgets.
func (bb *BudgetBook) All() []Budget {
	return slices.Clone(bb.budgets)
}

// Len returns the number of declared budgets.
func (bb *BudgetBook) Len() int { return len(bb.budgets) }

// BudgetStatus reconciles one category's declared cap against its actual
// spending for a month.
type BudgetStatus struct {
	Budget    Money
	Spent     Money
	Remaining Money   // Budget - Spent, negative when over budget
	Used      Percent // Spent / Budget x 100, 0 when the budget cap is zero
}

// MonthlyStatus reconciles each monthly budget against the ledger's spending
// in the given month, keyed by category. Weekly and custom-period budgets do
// not participate in a monthly reconciliation. Categories with spending but
// no declared budget are not reported.
func (bb *BudgetBook) MonthlyStatus(l *Ledger, m date.Month) map[string]BudgetStatus {
	status := make(map[string]BudgetStatus)
	for _, b := range bb.budgets {
		switch b.Period.Kind {
		case date.Monthly:
			spent := l.spentIn(b.Category, m)
			status[b.Category] = BudgetStatus{
				Budget:    b.Amount,
				Spent:     spent,
				Remaining: b.Amount.Sub(spent),
				Used:      spent.PercentOf(b.Amount),
			}
		case date.Weekly, date.Custom:
			// Not month-shaped: excluded from a monthly reconciliation.
		}
	}
	return status
}
