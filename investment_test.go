package fintrack

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

func testInvestment(name, typ string, purchase, current float64, qty int64) Investment {
	return Investment{
		Name:          name,
		Type:          typ,
		PurchaseDate:  date.MustParse("2024-01-15"),
		PurchasePrice: M(purchase, "USD"),
		Quantity:      decimal.NewFromInt(qty),
		CurrentPrice:  M(current, "USD"),
		LastUpdated:   date.MustParse("2024-03-01"),
	}
}

func TestInvestment_Values(t *testing.T) {
	inv := testInvestment("AAPL", "stock", 150, 160, 10)

	if got := inv.CurrentValue(); !got.Equal(M(1600, "USD")) {
		t.Errorf("CurrentValue() = %s, want 1600", got)
	}
	if got := inv.InitialValue(); !got.Equal(M(1500, "USD")) {
		t.Errorf("InitialValue() = %s, want 1500", got)
	}
	if got := inv.ProfitLoss(); !got.Equal(M(100, "USD")) {
		t.Errorf("ProfitLoss() = %s, want 100", got)
	}
	if got := inv.ProfitLossPercent(); !got.Equal(Percent(100.0 / 15)) {
		t.Errorf("ProfitLossPercent() = %s, want %.4f%%", got, 100.0/15)
	}
}

func TestInvestment_Loss(t *testing.T) {
	inv := testInvestment("MEME", "stock", 100, 40, 5)
	if got := inv.ProfitLoss(); !got.Equal(M(-300, "USD")) {
		t.Errorf("ProfitLoss() = %s, want -300", got)
	}
	if got := inv.ProfitLossPercent(); !got.Equal(-60) {
		t.Errorf("ProfitLossPercent() = %s, want -60%%", got)
	}
}

// A free position (zero initial value) reports 0% rather than dividing by zero.
func TestInvestment_ZeroInitialValue(t *testing.T) {
	inv := testInvestment("AIRDROP", "crypto", 0, 10, 100)
	if got := inv.ProfitLossPercent(); !got.Equal(0) {
		t.Errorf("ProfitLossPercent() = %s, want 0", got)
	}
	if got := inv.ProfitLoss(); !got.Equal(M(1000, "USD")) {
		t.Errorf("ProfitLoss() = %s, want 1000", got)
	}
}

func samplePortfolio(t *testing.T) *PortfolioBook {
	t.Helper()
	book := NewPortfolioBook()
	for _, inv := range []Investment{
		testInvestment("AAPL", "stock", 150, 160, 10),  // 1600
		testInvestment("GOOG", "stock", 2800, 2900, 1), // 2900
		testInvestment("BND", "bond", 75, 70, 20),      // 1400
	} {
		if err := book.Add(inv); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	return book
}

func TestPortfolioBook_Totals(t *testing.T) {
	book := samplePortfolio(t)
	if got := book.TotalValue(); !got.Equal(M(5900, "USD")) {
		t.Errorf("TotalValue() = %s, want 5900", got)
	}
	// (1600-1500) + (2900-2800) + (1400-1500) = 100
	if got := book.TotalProfitLoss(); !got.Equal(M(100, "USD")) {
		t.Errorf("TotalProfitLoss() = %s, want 100", got)
	}
}

func TestPortfolioBook_Allocation(t *testing.T) {
	book := samplePortfolio(t)
	allocation := book.Allocation()

	if len(allocation) != 2 {
		t.Fatalf("allocation has %d types, want 2", len(allocation))
	}
	// stock: 4500/5900, bond: 1400/5900
	if got := allocation["stock"]; !got.Equal(Percent(4500.0 / 59)) {
		t.Errorf("stock = %s, want %.4f%%", got, 4500.0/59)
	}
	if got := allocation["bond"]; !got.Equal(Percent(1400.0 / 59)) {
		t.Errorf("bond = %s, want %.4f%%", got, 1400.0/59)
	}
	// shares sum to 100 within floating point tolerance
	var sum float64
	for _, p := range allocation {
		sum += float64(p)
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("allocation sums to %f, want 100", sum)
	}
}

func TestPortfolioBook_Allocation_Empty(t *testing.T) {
	book := NewPortfolioBook()
	if got := book.Allocation(); len(got) != 0 {
		t.Errorf("empty book allocation = %v, want empty map", got)
	}

	// Positions exist but are worthless: still an empty map, not an error.
	free := testInvestment("AIRDROP", "crypto", 0, 0, 100)
	if err := book.Add(free); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := book.Allocation(); len(got) != 0 {
		t.Errorf("zero-value book allocation = %v, want empty map", got)
	}
}

func TestPortfolioBook_SetPrice(t *testing.T) {
	book := samplePortfolio(t)
	on := date.MustParse("2024-04-01")

	updated, err := book.SetPrice("AAPL", M(170, "USD"), on)
	if err != nil {
		t.Fatalf("SetPrice() error = %v", err)
	}
	if !updated.CurrentPrice.Equal(M(170, "USD")) {
		t.Errorf("CurrentPrice = %s, want 170", updated.CurrentPrice)
	}
	if updated.LastUpdated != on {
		t.Errorf("LastUpdated = %s, want %s", updated.LastUpdated, on)
	}
	// the mutation is in place
	got, _ := book.Get("AAPL")
	if !got.CurrentPrice.Equal(M(170, "USD")) {
		t.Errorf("stored CurrentPrice = %s, want 170", got.CurrentPrice)
	}

	if _, err := book.SetPrice("AAPL", M(-1, "USD"), on); err == nil {
		t.Errorf("SetPrice() with a negative price should fail")
	}
	if _, err := book.SetPrice("nope", M(1, "USD"), on); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetPrice() error = %v, want ErrNotFound", err)
	}
}

func TestPortfolioBook_GetAndByType(t *testing.T) {
	book := samplePortfolio(t)
	if _, err := book.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	stocks := book.ByType("stock")
	if len(stocks) != 2 {
		t.Errorf("ByType(stock) has %d entries, want 2", len(stocks))
	}
}

func TestPortfolioBook_Add_LastWriterWins(t *testing.T) {
	book := NewPortfolioBook()
	if err := book.Add(testInvestment("AAPL", "stock", 150, 160, 10)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := book.Add(testInvestment("AAPL", "stock", 150, 165, 12)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if book.Len() != 1 {
		t.Fatalf("book has %d positions, want 1", book.Len())
	}
	got, _ := book.Get("AAPL")
	if !got.CurrentValue().Equal(M(1980, "USD")) {
		t.Errorf("CurrentValue = %s, want the replacing 1980", got.CurrentValue())
	}
}
