package fintrack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/fintrack/date"
)

// Ledger is an append-only collection of transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append validates and records transactions, keeping chronological order.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid transaction: %w", err)
		}
	}
	l.transactions = append(l.transactions, txs...)
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		if a.Date.Before(b.Date) {
			return -1
		}
		if a.Date.After(b.Date) {
			return 1
		}
		return 0
	})
	return nil
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// All returns an iterator over all transactions in chronological order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// ByCategory returns the transactions recorded under the given category,
// in chronological order.
func (l *Ledger) ByCategory(category string) []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if tx.Category == category {
			out = append(out, tx)
		}
	}
	return out
}

// Balance computes the full-ledger balance: sum of income minus sum of
// expenses over all transactions. It may be negative.
func (l *Ledger) Balance() Money {
	var income, expense Money
	for _, tx := range l.transactions {
		switch tx.Kind {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income.Sub(expense)
}

// SpendingByCategory returns total expense amounts grouped by category over
// the entire ledger, with no date filter.
func (l *Ledger) SpendingByCategory() map[string]Money {
	categories := make(map[string]Money)
	for _, tx := range l.transactions {
		if tx.Kind == Expense {
			categories[tx.Category] = categories[tx.Category].Add(tx.Amount)
		}
	}
	return categories
}

// MonthlyReport summarizes one calendar month of the ledger.
type MonthlyReport struct {
	Month      date.Month
	Income     Money
	Expense    Money
	Net        Money            // Income - Expense, may be negative
	Categories map[string]Money // expense totals per category
}

// MonthlyReport aggregates the transactions of one calendar month into
// income and expense totals, the net, and expense totals per category.
// An empty month yields a zero report with an empty category map.
func (l *Ledger) MonthlyReport(m date.Month) *MonthlyReport {
	report := &MonthlyReport{Month: m, Categories: make(map[string]Money)}
	for _, tx := range l.transactions {
		if !m.Contains(tx.Date) {
			continue
		}
		switch tx.Kind {
		case Income:
			report.Income = report.Income.Add(tx.Amount)
		case Expense:
			report.Expense = report.Expense.Add(tx.Amount)
			report.Categories[tx.Category] = report.Categories[tx.Category].Add(tx.Amount)
		}
	}
	report.Net = report.Income.Sub(report.Expense)
	return report
}

// spentIn returns the total expense for one category within one calendar
// month. Shared by the budget reconciler and the trend analyzer.
func (l *Ledger) spentIn(category string, m date.Month) Money {
	var total Money
	for _, tx := range l.transactions {
		if tx.Kind == Expense && tx.Category == category && m.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
