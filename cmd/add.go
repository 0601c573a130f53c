package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	amount      float64
	category    string
	day         string
	description string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income in the ledger" }
func (*incomeCmd) Usage() string {
	return `ft income -amount <amount> -category <category> [-d <date>] [-desc <text>]

  Appends an income transaction to the ledger.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount received (required, positive)")
	f.StringVar(&c.category, "category", "", "Category, e.g. Salary (required)")
	f.StringVar(&c.day, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.description, "desc", "", "Optional description")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := fintrack.NewIncome(on, money(c.amount), c.category, c.description)
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	amount      float64
	category    string
	day         string
	description string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense in the ledger" }
func (*expenseCmd) Usage() string {
	return `ft expense -amount <amount> -category <category> [-d <date>] [-desc <text>]

  Appends an expense transaction to the ledger.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount spent (required, positive)")
	f.StringVar(&c.category, "category", "", "Category, e.g. Groceries (required)")
	f.StringVar(&c.day, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.description, "desc", "", "Optional description")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := fintrack.NewExpense(on, money(c.amount), c.category, c.description)
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}
