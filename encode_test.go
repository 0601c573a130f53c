package fintrack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/fintrack/date"
)

func TestLedger_EncodeDecodeRoundTrip(t *testing.T) {
	l := sampleLedger(t)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if decoded.Len() != l.Len() {
		t.Fatalf("decoded %d transactions, want %d", decoded.Len(), l.Len())
	}
	want := l.MonthlyReport(date.NewMonth(2024, 3))
	got := decoded.MonthlyReport(date.NewMonth(2024, 3))
	if !got.Income.Equal(want.Income) || !got.Expense.Equal(want.Expense) || !got.Net.Equal(want.Net) {
		t.Errorf("decoded report = %+v, want %+v", got, want)
	}
}

func TestDecodeLedger_FailsFastOnBadDate(t *testing.T) {
	input := `{"id":"a","kind":"income","date":"2024-03-01","amount":2000,"category":"Salary"}
{"id":"b","kind":"expense","date":"not-a-date","amount":300,"category":"Groceries"}
{"id":"c","kind":"expense","date":"2024-03-20","amount":150,"category":"Dining"}
`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil {
		t.Fatalf("DecodeLedger() should fail on the first bad date")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the offending line", err)
	}
}

func TestDecodeLedger_RejectsBadRecords(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "unknown kind", line: `{"kind":"transfer","date":"2024-03-01","amount":10,"category":"X"}`},
		{name: "non numeric amount", line: `{"kind":"expense","date":"2024-03-01","amount":"lots","category":"X"}`},
		{name: "zero amount", line: `{"kind":"expense","date":"2024-03-01","amount":0,"category":"X"}`},
		{name: "missing category", line: `{"kind":"expense","date":"2024-03-01","amount":10}`},
		{name: "not json", line: `expense,10,Groceries`},
	}
	for _, tc := range testCases {
		if _, err := DecodeLedger(strings.NewReader(tc.line + "\n")); err == nil {
			t.Errorf("%s: DecodeLedger() should fail", tc.name)
		}
	}
}

func TestDecodeLedger_SkipsEmptyLinesAndAssignsIdentity(t *testing.T) {
	input := `{"kind":"income","date":"2024-03-01","amount":2000,"currency":"EUR","category":"Salary"}

{"kind":"expense","date":"2024-03-05","amount":300,"currency":"EUR","category":"Groceries"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("decoded %d transactions, want 2", l.Len())
	}
	for tx := range l.All() {
		if tx.ID == "" {
			t.Errorf("decoded transaction %s has no identity", tx.Date)
		}
	}
}

func TestBudgets_EncodeDecodeRoundTrip(t *testing.T) {
	book := NewBudgetBook()
	open := Budget{Category: "Groceries", Amount: M(300, "EUR"), Period: date.MonthlyPeriod(), Start: date.MustParse("2024-01-01")}
	closed := Budget{Category: "Dining", Amount: M(150, "EUR"), Period: date.WeeklyPeriod(), Start: date.MustParse("2024-01-01"), End: date.MustParse("2024-06-30")}
	for _, b := range []Budget{open, closed} {
		if err := book.Set(b); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeBudgets(&buf, book); err != nil {
		t.Fatalf("EncodeBudgets() error = %v", err)
	}
	decoded, err := DecodeBudgets(&buf)
	if err != nil {
		t.Fatalf("DecodeBudgets() error = %v", err)
	}
	if decoded.Len() != 2 {
		t.Fatalf("decoded %d budgets, want 2", decoded.Len())
	}
	got, err := decoded.Get("Dining", date.Weekly)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.Amount.Equal(M(150, "EUR")) || got.End != closed.End {
		t.Errorf("decoded budget = %+v, want %+v", got, closed)
	}
}

func TestDecodeBudgets_Empty(t *testing.T) {
	book, err := DecodeBudgets(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeBudgets() error = %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("empty input should decode to an empty book")
	}
}

func TestGoals_EncodeDecodeRoundTrip(t *testing.T) {
	book := NewGoalBook()
	g := Goal{
		Name:        "Emergency Fund",
		Target:      M(10000, "EUR"),
		Current:     M(2500, "EUR"),
		Deadline:    date.MustParse("2025-03-01"),
		Category:    "Savings",
		Description: "six months of expenses",
	}
	if err := book.Add(g); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeGoals(&buf, book); err != nil {
		t.Fatalf("EncodeGoals() error = %v", err)
	}
	decoded, err := DecodeGoals(&buf)
	if err != nil {
		t.Fatalf("DecodeGoals() error = %v", err)
	}
	got, err := decoded.Get("Emergency Fund")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.Target.Equal(g.Target) || !got.Current.Equal(g.Current) || got.Deadline != g.Deadline || got.Description != g.Description {
		t.Errorf("decoded goal = %+v, want %+v", got, g)
	}
}

func TestInvestments_EncodeDecodeRoundTrip(t *testing.T) {
	book := samplePortfolio(t)

	var buf bytes.Buffer
	if err := EncodeInvestments(&buf, book); err != nil {
		t.Fatalf("EncodeInvestments() error = %v", err)
	}
	decoded, err := DecodeInvestments(&buf)
	if err != nil {
		t.Fatalf("DecodeInvestments() error = %v", err)
	}
	if decoded.Len() != book.Len() {
		t.Fatalf("decoded %d positions, want %d", decoded.Len(), book.Len())
	}
	if got, want := decoded.TotalValue(), book.TotalValue(); !got.Equal(want) {
		t.Errorf("decoded TotalValue = %s, want %s", got, want)
	}
	got, err := decoded.Get("BND")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.Quantity.Equal(newDecimal(20)) {
		t.Errorf("decoded quantity = %s, want 20", got.Quantity)
	}
}

func TestDecodeGoals_FailsFastOnBadDate(t *testing.T) {
	input := `[{"name":"Car","target":1000,"current":0,"deadline":"someday"}]`
	if _, err := DecodeGoals(strings.NewReader(input)); err == nil {
		t.Fatalf("DecodeGoals() should fail on a bad deadline")
	}
}
