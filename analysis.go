package fintrack

import (
	"time"

	"github.com/etnz/fintrack/date"
)

// This file holds the trend analyzer: rolling multi-month series derived
// from the ledger. All series take explicit reference months so the results
// are deterministic; only the CLI substitutes the wall-clock month.

// IncomeExpensePoint is one month of the income-vs-expenses series.
type IncomeExpensePoint struct {
	Month   date.Month
	Income  Money
	Expense Money
}

// Net returns income minus expense for the month; it may be negative.
func (p IncomeExpensePoint) Net() Money { return p.Income.Sub(p.Expense) }

// IncomeVsExpenses sums income and expense per calendar month of the given
// year. The series always has exactly 12 entries, January first, zero-filled
// for months without transactions.
func (l *Ledger) IncomeVsExpenses(year int) []IncomeExpensePoint {
	series := make([]IncomeExpensePoint, 12)
	for i := range series {
		series[i].Month = date.NewMonth(year, time.Month(i+1))
	}
	for _, tx := range l.transactions {
		if tx.Date.Year() != year {
			continue
		}
		p := &series[int(tx.Date.Month())-1]
		switch tx.Kind {
		case Income:
			p.Income = p.Income.Add(tx.Amount)
		case Expense:
			p.Expense = p.Expense.Add(tx.Amount)
		}
	}
	return series
}

// window returns the months in the rolling window of the given size ending
// at ref (inclusive), oldest first. The first bucket is size-1 months before
// ref, so the series length always equals size.
func window(size int, ref date.Month) []date.Month {
	if size <= 0 {
		return nil
	}
	months := make([]date.Month, 0, size)
	m := ref.AddMonths(-(size - 1))
	for !m.After(ref) {
		months = append(months, m)
		m = m.Next()
	}
	return months
}

// TrendPoint is one month of a category spending trend.
type TrendPoint struct {
	Month  date.Month
	Amount Money
}

// CategoryTrend computes the expense trend for one category over a rolling
// window of the given number of months ending at ref, oldest first.
func (l *Ledger) CategoryTrend(category string, months int, ref date.Month) []TrendPoint {
	buckets := window(months, ref)
	series := make([]TrendPoint, 0, len(buckets))
	for _, m := range buckets {
		series = append(series, TrendPoint{Month: m, Amount: l.spentIn(category, m)})
	}
	return series
}

// SavingsPoint is one month of the savings-rate series.
type SavingsPoint struct {
	Month   date.Month
	Income  Money
	Expense Money
	Rate    Percent // (income-expense)/income x 100, 0 when income is zero
}

// SavingsRates computes the monthly savings rate over a rolling window of
// the given number of months ending at ref, oldest first. Months without
// income report a zero rate rather than a division error.
func (l *Ledger) SavingsRates(months int, ref date.Month) []SavingsPoint {
	buckets := window(months, ref)
	series := make([]SavingsPoint, 0, len(buckets))
	for _, m := range buckets {
		report := l.MonthlyReport(m)
		p := SavingsPoint{Month: m, Income: report.Income, Expense: report.Expense}
		if report.Income.IsPositive() {
			p.Rate = report.Net.PercentOf(report.Income)
		}
		series = append(series, p)
	}
	return series
}
