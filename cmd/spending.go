package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

// spendingCmd holds the flags for the 'spending' subcommand.
type spendingCmd struct {
	year  int
	month int
}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "show spending grouped by category" }
func (*spendingCmd) Usage() string {
	return `ft spending [-y <year> -m <month>]

  Sums expenses per category, over the whole ledger or over one calendar
  month.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Restrict to this year (with -m)")
	f.IntVar(&c.month, "m", 0, "Restrict to this month (with -y)")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	title := "# Spending by category"
	var spending map[string]fintrack.Money
	if c.year != 0 || c.month != 0 {
		m, err := refMonth(c.year, c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		spending = ledger.MonthlyReport(m).Categories
		title = fmt.Sprintf("# Spending by category, %s", m.Label())
	} else {
		spending = ledger.SpendingByCategory()
	}

	if len(spending) == 0 {
		fmt.Println("No expenses recorded.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n| Category | Spent |\n|---|---:|\n", title)
	for _, cat := range slices.Sorted(maps.Keys(spending)) {
		fmt.Fprintf(&b, "| %s | %s |\n", cat, spending[cat])
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
