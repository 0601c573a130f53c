package fintrack

import (
	"errors"
	"fmt"

	"github.com/etnz/fintrack/date"
	"github.com/google/uuid"
)

// ErrNotFound reports a lookup by identity key that matched no record.
// Callers can distinguish "no such entity" from an entity with zero value.
var ErrNotFound = errors.New("not found")

// Kind is a typed string identifying the direction of a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a transaction kind from its textual form.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q: want income or expense", s)
	}
}

// Transaction is a single dated financial event. Transactions are immutable
// once recorded: the ledger only ever appends them.
type Transaction struct {
	ID          string
	Kind        Kind
	Date        date.Date
	Amount      Money
	Category    string
	Description string
}

// NewIncome returns an income transaction with a fresh identity.
func NewIncome(on date.Date, amount Money, category, description string) Transaction {
	return newTransaction(Income, on, amount, category, description)
}

// NewExpense returns an expense transaction with a fresh identity.
func NewExpense(on date.Date, amount Money, category, description string) Transaction {
	return newTransaction(Expense, on, amount, category, description)
}

func newTransaction(kind Kind, on date.Date, amount Money, category, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Date:        on,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
}

// Validate checks the transaction for correctness before it enters a ledger.
func (t Transaction) Validate() error {
	if t.Kind != Income && t.Kind != Expense {
		return fmt.Errorf("invalid transaction kind %q", t.Kind)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Category == "" {
		return errors.New("transaction category is required")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	return nil
}

// MarshalJSON writes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount.Decimal())
	w.Optional("currency", t.Amount.Currency())
	w.Append("category", t.Category)
	w.Optional("description", t.Description)
	return w.MarshalJSON()
}
