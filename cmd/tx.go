package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	category string
	year     int
	month    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list ledger transactions" }
func (*txCmd) Usage() string {
	return `ft tx [-category <category>] [-y <year> -m <month>]

  Lists transactions in chronological order, optionally filtered by
  category or calendar month.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only show transactions of this category")
	f.IntVar(&c.year, "y", 0, "Only show transactions of this year (with -m)")
	f.IntVar(&c.month, "m", 0, "Only show transactions of this month (with -y)")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	byMonth := c.year != 0 || c.month != 0
	var filter func(fintrack.Transaction) bool
	if byMonth {
		m, err := refMonth(c.year, c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter = func(tx fintrack.Transaction) bool { return m.Contains(tx.Date) }
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintf(&b, "| Date | Kind | Amount | Category | Description |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|---|\n")
	n := 0
	for tx := range ledger.All() {
		if c.category != "" && tx.Category != c.category {
			continue
		}
		if filter != nil && !filter(tx) {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", tx.Date, tx.Kind, tx.Amount, tx.Category, tx.Description)
		n++
	}
	if n == 0 {
		fmt.Println("No transactions.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
