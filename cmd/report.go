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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	year  int
	month int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a monthly or yearly report" }
func (*reportCmd) Usage() string {
	return `ft report [-y <year>] [-m <month>]

  With a month: income, expenses, net, and expense categories for that
  calendar month (defaults to the current month).
  With only a year: income vs expenses for each of its 12 months.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year of the report (defaults to the current year)")
	f.IntVar(&c.month, "m", 0, "Month of the report; omit for a full-year view")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.year != 0 && c.month == 0 {
		c.renderYear(ledger)
		return subcommands.ExitSuccess
	}

	m, err := refMonth(c.year, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report := ledger.MonthlyReport(m)

	var b strings.Builder
	fmt.Fprintf(&b, "# Report for %s\n\n", m.Label())
	fmt.Fprintf(&b, "- Income: %s\n", report.Income)
	fmt.Fprintf(&b, "- Expenses: %s\n", report.Expense)
	fmt.Fprintf(&b, "- Net: %s\n", report.Net.SignedString())
	if len(report.Categories) > 0 {
		fmt.Fprintf(&b, "\n## Expenses by category\n\n")
		fmt.Fprintf(&b, "| Category | Spent |\n|---|---:|\n")
		for _, cat := range slices.Sorted(maps.Keys(report.Categories)) {
			fmt.Fprintf(&b, "| %s | %s |\n", cat, report.Categories[cat])
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *reportCmd) renderYear(ledger *fintrack.Ledger) {
	series := ledger.IncomeVsExpenses(c.year)
	var b strings.Builder
	fmt.Fprintf(&b, "# Income vs expenses %d\n\n", c.year)
	fmt.Fprintf(&b, "| Month | Income | Expenses | Net |\n|---|---:|---:|---:|\n")
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Month.Label(), p.Income, p.Expense, p.Net().SignedString())
	}
	printMarkdown(b.String())
}
