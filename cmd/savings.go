package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

// savingsCmd holds the flags for the 'savings' subcommand.
type savingsCmd struct {
	months int
	day    string
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "show the monthly savings rate" }
func (*savingsCmd) Usage() string {
	return `ft savings [-months <n>] [-d <date>]

  Reports the savings rate per month over a rolling window ending at the
  reference date's month: (income - expenses) / income x 100, or 0 for
  months without income.
`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Window size in months")
	f.StringVar(&c.day, "d", "", "Reference date (defaults to today)")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	series := ledger.SavingsRates(c.months, date.MonthOf(on))
	if len(series) == 0 {
		fmt.Println("Empty window.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Savings rate, last %d months\n\n", len(series))
	fmt.Fprintf(&b, "| Month | Income | Expenses | Rate |\n|---|---:|---:|---:|\n")
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Month.Label(), p.Income, p.Expense, p.Rate)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
