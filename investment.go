package fintrack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Investment is a position in a single instrument, valued at user-supplied
// point prices. The name is the identity key within a book.
type Investment struct {
	Name          string
	Type          string // stock, bond, mutual fund, ...
	PurchaseDate  date.Date
	PurchasePrice Money
	Quantity      decimal.Decimal
	CurrentPrice  Money
	LastUpdated   date.Date
}

// Validate checks the investment for correctness before it enters a book.
func (inv Investment) Validate() error {
	if inv.Name == "" {
		return errors.New("investment name is required")
	}
	if inv.Type == "" {
		return errors.New("investment type is required")
	}
	if inv.PurchaseDate.IsZero() {
		return errors.New("investment purchase date is required")
	}
	if inv.PurchasePrice.IsNegative() {
		return fmt.Errorf("purchase price must not be negative, got %s", inv.PurchasePrice)
	}
	if inv.Quantity.IsNegative() {
		return fmt.Errorf("quantity must not be negative, got %s", inv.Quantity)
	}
	if inv.CurrentPrice.IsNegative() {
		return fmt.Errorf("current price must not be negative, got %s", inv.CurrentPrice)
	}
	return nil
}

// CurrentValue returns current price x quantity.
func (inv Investment) CurrentValue() Money {
	return inv.CurrentPrice.Mul(inv.Quantity)
}

// InitialValue returns purchase price x quantity.
func (inv Investment) InitialValue() Money {
	return inv.PurchasePrice.Mul(inv.Quantity)
}

// ProfitLoss returns the gain (or loss, negative) against the initial value.
func (inv Investment) ProfitLoss() Money {
	return inv.CurrentValue().Sub(inv.InitialValue())
}

// ProfitLossPercent returns the gain as a percentage of the initial value,
// or 0 when the initial value is zero.
func (inv Investment) ProfitLossPercent() Percent {
	return inv.ProfitLoss().PercentOf(inv.InitialValue())
}

// MarshalJSON writes the investment with a stable field order.
func (inv Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", inv.Name)
	w.Append("type", inv.Type)
	w.Append("purchaseDate", inv.PurchaseDate)
	w.Append("purchasePrice", inv.PurchasePrice.Decimal())
	w.Append("quantity", inv.Quantity)
	w.Append("currentPrice", inv.CurrentPrice.Decimal())
	w.Optional("currency", inv.CurrentPrice.Currency())
	w.Append("lastUpdated", inv.LastUpdated)
	return w.MarshalJSON()
}

// PortfolioBook holds the investment positions, keyed by name.
type PortfolioBook struct {
	investments []Investment
}

// NewPortfolioBook creates an empty portfolio book.
func NewPortfolioBook() *PortfolioBook {
	return &PortfolioBook{investments: make([]Investment, 0)}
}

// Add validates and records an investment. A prior position with the same
// name is replaced: the last writer wins.
func (pb *PortfolioBook) Add(inv Investment) error {
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("invalid investment: %w", err)
	}
	pb.investments = slices.DeleteFunc(pb.investments, func(x Investment) bool { return x.Name == inv.Name })
	pb.investments = append(pb.investments, inv)
	return nil
}

// Get returns the investment with the given name, or ErrNotFound.
func (pb *PortfolioBook) Get(name string) (Investment, error) {
	for _, inv := range pb.investments {
		if inv.Name == name {
			return inv, nil
		}
	}
	return Investment{}, fmt.Errorf("investment %q: %w", name, ErrNotFound)
}

// All returns all positions.
func (pb *PortfolioBook) All() []Investment {
	return slices.Clone(pb.investments)
}

// Len returns the number of positions.
func (pb *PortfolioBook) Len() int { return len(pb.investments) }

// ByType returns the positions of the given investment type.
func (pb *PortfolioBook) ByType(investmentType string) []Investment {
	var out []Investment
	for _, inv := range pb.investments {
		if inv.Type == investmentType {
			out = append(out, inv)
		}
	}
	return out
}

// SetPrice updates the named position's current price in place and stamps
// its last-updated date. It returns the updated position, or ErrNotFound.
func (pb *PortfolioBook) SetPrice(name string, price Money, on date.Date) (Investment, error) {
	if price.IsNegative() {
		return Investment{}, fmt.Errorf("price must not be negative, got %s", price)
	}
	for i, inv := range pb.investments {
		if inv.Name == name {
			pb.investments[i].CurrentPrice = price
			pb.investments[i].LastUpdated = on
			return pb.investments[i], nil
		}
	}
	return Investment{}, fmt.Errorf("investment %q: %w", name, ErrNotFound)
}

// TotalValue returns the sum of current values over all positions.
func (pb *PortfolioBook) TotalValue() Money {
	var total Money
	for _, inv := range pb.investments {
		total = total.Add(inv.CurrentValue())
	}
	return total
}

// TotalProfitLoss returns the sum of gains and losses over all positions.
func (pb *PortfolioBook) TotalProfitLoss() Money {
	var total Money
	for _, inv := range pb.investments {
		total = total.Add(inv.ProfitLoss())
	}
	return total
}

// Allocation returns each investment type's share of the total current
// value, as percentages. When the total value is zero the map is empty.
func (pb *PortfolioBook) Allocation() map[string]Percent {
	allocation := make(map[string]Percent)
	total := pb.TotalValue()
	if total.IsZero() {
		return allocation
	}
	byType := make(map[string]Money)
	for _, inv := range pb.investments {
		byType[inv.Type] = byType[inv.Type].Add(inv.CurrentValue())
	}
	for t, v := range byType {
		allocation[t] = v.PercentOf(total)
	}
	return allocation
}
