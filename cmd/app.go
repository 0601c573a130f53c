// Package cmd implements the CLI application to manage a personal finance
// ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands in registration order. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&txCmd{},
	&balanceCmd{},
	&reportCmd{},
	&spendingCmd{},
	&budgetCmd{},
	&trendCmd{},
	&savingsCmd{},
	&goalCmd{},
	&investCmd{},
	&chartCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile      = flag.String("ledger-file", "", "Path to the ledger file (JSONL). Overrides config and env.")
	budgetFile      = flag.String("budget-file", "", "Path to the budgets file (JSON). Overrides config and env.")
	goalsFile       = flag.String("goals-file", "", "Path to the goals file (JSON). Overrides config and env.")
	investmentsFile = flag.String("investments-file", "", "Path to the investments file (JSON). Overrides config and env.")
	currencyFlag    = flag.String("currency", "", "Default currency code for new amounts. Overrides config and env.")
	verbose         = flag.Bool("v", false, "Enable debug logging.")
)

// logger is the application logger, quiet unless -v is set.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// InitLogger applies the verbosity flag. Called by main after flag parsing.
func InitLogger() {
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
}

// money builds a Money from an amount flag using the configured currency.
func money(amount float64) fintrack.Money {
	return fintrack.M(amount, defaultCurrency())
}

// decodeLedgerFile loads the ledger, starting empty when the file does not
// exist yet.
func decodeLedgerFile() (*fintrack.Ledger, error) {
	path := resolveLedgerFile()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", path).Msg("no ledger file yet, starting empty")
		return fintrack.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()
	return fintrack.DecodeLedger(f)
}

// appendTransaction appends a single transaction to the ledger file.
func appendTransaction(tx fintrack.Transaction) subcommands.ExitStatus {
	path := resolveLedgerFile()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fintrack.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	logger.Debug().Str("path", path).Str("id", tx.ID).Msg("transaction appended")
	fmt.Printf("Recorded %s of %s in %s on %s\n", tx.Kind, tx.Amount, tx.Category, tx.Date)
	return subcommands.ExitSuccess
}

// decodeBudgetFile loads the budget book, starting empty when the file does
// not exist yet.
func decodeBudgetFile() (*fintrack.BudgetBook, error) {
	return decodeBook(resolveBudgetFile(), fintrack.NewBudgetBook, fintrack.DecodeBudgets)
}

// encodeBudgetFile writes the budget book back to its file.
func encodeBudgetFile(book *fintrack.BudgetBook) error {
	return encodeBook(resolveBudgetFile(), book, fintrack.EncodeBudgets)
}

// decodeGoalsFile loads the goal book, starting empty when the file does
// not exist yet.
func decodeGoalsFile() (*fintrack.GoalBook, error) {
	return decodeBook(resolveGoalsFile(), fintrack.NewGoalBook, fintrack.DecodeGoals)
}

// encodeGoalsFile writes the goal book back to its file.
func encodeGoalsFile(book *fintrack.GoalBook) error {
	return encodeBook(resolveGoalsFile(), book, fintrack.EncodeGoals)
}

// decodeInvestmentsFile loads the portfolio book, starting empty when the
// file does not exist yet.
func decodeInvestmentsFile() (*fintrack.PortfolioBook, error) {
	return decodeBook(resolveInvestmentsFile(), fintrack.NewPortfolioBook, fintrack.DecodeInvestments)
}

// encodeInvestmentsFile writes the portfolio book back to its file.
func encodeInvestmentsFile(book *fintrack.PortfolioBook) error {
	return encodeBook(resolveInvestmentsFile(), book, fintrack.EncodeInvestments)
}

func decodeBook[T any](path string, fresh func() *T, decode func(r io.Reader) (*T, error)) (*T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", path).Msg("no data file yet, starting empty")
		return fresh(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

func encodeBook[T any](path string, book *T, encode func(w io.Writer, book *T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()
	return encode(f, book)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
