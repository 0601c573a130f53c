package fintrack

import (
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
)

func TestIncomeVsExpenses(t *testing.T) {
	l := sampleLedger(t)
	series := l.IncomeVsExpenses(2024)

	if len(series) != 12 {
		t.Fatalf("series has %d entries, want 12", len(series))
	}
	if series[0].Month != date.NewMonth(2024, time.January) {
		t.Errorf("series starts at %s, want January", series[0].Month)
	}
	march := series[2]
	if !march.Income.Equal(M(2000, "EUR")) || !march.Expense.Equal(M(450, "EUR")) {
		t.Errorf("March = income %s expense %s, want 2000/450", march.Income, march.Expense)
	}
	if !march.Net().Equal(M(1550, "EUR")) {
		t.Errorf("March net = %s, want 1550", march.Net())
	}
	april := series[3]
	if !april.Income.IsZero() || !april.Expense.Equal(M(80, "EUR")) {
		t.Errorf("April = income %s expense %s, want 0/80", april.Income, april.Expense)
	}
	// months without transactions are zero-filled, not missing
	for _, i := range []int{0, 1, 4, 11} {
		if !series[i].Income.IsZero() || !series[i].Expense.IsZero() {
			t.Errorf("%s should be zero-filled", series[i].Month)
		}
	}
}

func TestIncomeVsExpenses_OtherYear(t *testing.T) {
	l := sampleLedger(t)
	for _, p := range l.IncomeVsExpenses(2023) {
		if !p.Income.IsZero() || !p.Expense.IsZero() {
			t.Errorf("2023 %s should be zero, got income %s expense %s", p.Month, p.Income, p.Expense)
		}
	}
}

func TestCategoryTrend(t *testing.T) {
	l := sampleLedger(t)
	ref := date.NewMonth(2024, time.April)
	series := l.CategoryTrend("Groceries", 3, ref)

	if len(series) != 3 {
		t.Fatalf("series has %d entries, want 3", len(series))
	}
	want := []struct {
		month  date.Month
		amount Money
	}{
		{date.NewMonth(2024, time.February), M(0, "")},
		{date.NewMonth(2024, time.March), M(300, "EUR")},
		{date.NewMonth(2024, time.April), M(80, "EUR")},
	}
	for i, w := range want {
		if series[i].Month != w.month {
			t.Errorf("series[%d].Month = %s, want %s", i, series[i].Month, w.month)
		}
		if !series[i].Amount.Decimal().Equal(w.amount.Decimal()) {
			t.Errorf("series[%d].Amount = %s, want %s", i, series[i].Amount, w.amount)
		}
	}
}

// A window spanning a year boundary must roll the year: starting October and
// spanning 4 months yields Oct, Nov, Dec, Jan of the next year.
func TestCategoryTrend_YearBoundary(t *testing.T) {
	l := NewLedger()
	ref := date.NewMonth(2025, time.January)
	series := l.CategoryTrend("Groceries", 4, ref)

	want := []string{"Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025"}
	if len(series) != len(want) {
		t.Fatalf("series has %d entries, want %d", len(series), len(want))
	}
	for i, label := range want {
		if got := series[i].Month.Label(); got != label {
			t.Errorf("series[%d] = %s, want %s", i, got, label)
		}
	}
	for i := 1; i < len(series); i++ {
		if !series[i-1].Month.Before(series[i].Month) {
			t.Errorf("labels not strictly increasing at %d", i)
		}
	}
}

func TestCategoryTrend_EmptyWindow(t *testing.T) {
	l := sampleLedger(t)
	if got := l.CategoryTrend("Groceries", 0, date.NewMonth(2024, time.April)); len(got) != 0 {
		t.Errorf("zero-size window should yield an empty series, got %d entries", len(got))
	}
	if got := l.CategoryTrend("Groceries", -3, date.NewMonth(2024, time.April)); len(got) != 0 {
		t.Errorf("negative window should yield an empty series, got %d entries", len(got))
	}
}

func TestSavingsRates(t *testing.T) {
	l := sampleLedger(t)
	ref := date.NewMonth(2024, time.April)
	series := l.SavingsRates(3, ref)

	if len(series) != 3 {
		t.Fatalf("series has %d entries, want 3", len(series))
	}
	// February: no transactions at all, rate is an explicit zero.
	if !series[0].Rate.Equal(0) {
		t.Errorf("February rate = %s, want 0", series[0].Rate)
	}
	// March: (2000-450)/2000 x 100 = 77.5
	if !series[1].Rate.Equal(77.5) {
		t.Errorf("March rate = %s, want 77.50%%", series[1].Rate)
	}
	// April: expenses but no income, rate stays zero instead of -inf.
	if !series[2].Rate.Equal(0) {
		t.Errorf("April rate = %s, want 0", series[2].Rate)
	}
}

func TestSavingsRates_NegativeRate(t *testing.T) {
	l := NewLedger()
	err := l.Append(
		NewIncome(date.MustParse("2024-05-01"), M(1000, ""), "Salary", ""),
		NewExpense(date.MustParse("2024-05-10"), M(1500, ""), "Rent", ""),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	series := l.SavingsRates(1, date.NewMonth(2024, time.May))
	if len(series) != 1 {
		t.Fatalf("series has %d entries, want 1", len(series))
	}
	if !series[0].Rate.Equal(-50) {
		t.Errorf("rate = %s, want -50.00%%", series[0].Rate)
	}
}
