package fintrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/fintrack/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Decoding is fail-fast: the first malformed record (bad date, bad amount)
// aborts the whole decode with an error naming the offending record, rather
// than silently skipping it.

// EncodeTransaction writes a single transaction as one JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeLedger writes all transactions as a stream of JSON lines.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.All() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// txRecord is a specialized struct for decoding one ledger line.
type txRecord struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Date        date.Date       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		kind, err := ParseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		tx := Transaction{
			ID:          rec.ID,
			Kind:        kind,
			Date:        rec.Date,
			Amount:      M(rec.Amount, rec.Currency),
			Category:    rec.Category,
			Description: rec.Description,
		}
		if tx.ID == "" {
			// Records written by hand or migrated from older files get an
			// identity on first decode.
			tx.ID = uuid.NewString()
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeBudgets writes the budget book as an indented JSON array.
func EncodeBudgets(w io.Writer, bb *BudgetBook) error {
	return encodeList(w, bb.All(), "budgets")
}

// budgetRecord is a specialized struct for decoding one budget.
type budgetRecord struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Period   date.Period     `json:"period"`
	Start    date.Date       `json:"start"`
	End      *date.Date      `json:"end"`
}

// DecodeBudgets decodes a budget book from a JSON array.
func DecodeBudgets(r io.Reader) (*BudgetBook, error) {
	var records []budgetRecord
	if err := decodeList(r, &records, "budgets"); err != nil {
		return nil, err
	}
	book := NewBudgetBook()
	for i, rec := range records {
		b := Budget{
			Category: rec.Category,
			Amount:   M(rec.Amount, rec.Currency),
			Period:   rec.Period,
			Start:    rec.Start,
		}
		if rec.End != nil {
			b.End = *rec.End
		}
		if err := book.Set(b); err != nil {
			return nil, fmt.Errorf("budget %d: %w", i+1, err)
		}
	}
	return book, nil
}

// EncodeGoals writes the goal book as an indented JSON array.
func EncodeGoals(w io.Writer, gb *GoalBook) error {
	return encodeList(w, gb.All(), "goals")
}

// goalRecord is a specialized struct for decoding one goal.
type goalRecord struct {
	Name        string          `json:"name"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Currency    string          `json:"currency"`
	Deadline    date.Date       `json:"deadline"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// DecodeGoals decodes a goal book from a JSON array.
func DecodeGoals(r io.Reader) (*GoalBook, error) {
	var records []goalRecord
	if err := decodeList(r, &records, "goals"); err != nil {
		return nil, err
	}
	book := NewGoalBook()
	for i, rec := range records {
		g := Goal{
			Name:        rec.Name,
			Target:      M(rec.Target, rec.Currency),
			Current:     M(rec.Current, rec.Currency),
			Deadline:    rec.Deadline,
			Category:    rec.Category,
			Description: rec.Description,
		}
		if err := book.Add(g); err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
	}
	return book, nil
}

// EncodeInvestments writes the portfolio book as an indented JSON array.
func EncodeInvestments(w io.Writer, pb *PortfolioBook) error {
	return encodeList(w, pb.All(), "investments")
}

// investmentRecord is a specialized struct for decoding one investment.
type investmentRecord struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	PurchaseDate  date.Date       `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Quantity      decimal.Decimal `json:"quantity"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Currency      string          `json:"currency"`
	LastUpdated   date.Date       `json:"lastUpdated"`
}

// DecodeInvestments decodes a portfolio book from a JSON array.
func DecodeInvestments(r io.Reader) (*PortfolioBook, error) {
	var records []investmentRecord
	if err := decodeList(r, &records, "investments"); err != nil {
		return nil, err
	}
	book := NewPortfolioBook()
	for i, rec := range records {
		inv := Investment{
			Name:          rec.Name,
			Type:          rec.Type,
			PurchaseDate:  rec.PurchaseDate,
			PurchasePrice: M(rec.PurchasePrice, rec.Currency),
			Quantity:      rec.Quantity,
			CurrentPrice:  M(rec.CurrentPrice, rec.Currency),
			LastUpdated:   rec.LastUpdated,
		}
		if err := book.Add(inv); err != nil {
			return nil, fmt.Errorf("investment %d: %w", i+1, err)
		}
	}
	return book, nil
}

func encodeList[T any](w io.Writer, list []T, what string) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", what, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func decodeList[T any](r io.Reader, into *[]T, what string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", what, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("could not decode %s: %w", what, err)
	}
	return nil
}
