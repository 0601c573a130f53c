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

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	category string
	months   int
	day      string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show a category's monthly spending trend" }
func (*trendCmd) Usage() string {
	return `ft trend -category <category> [-months <n>] [-d <date>]

  Sums a category's expenses over a rolling window of months ending at
  the reference date's month, oldest first.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to analyze (required)")
	f.IntVar(&c.months, "months", 6, "Window size in months")
	f.StringVar(&c.day, "d", "", "Reference date (defaults to today)")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		return subcommands.ExitUsageError
	}
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

	series := ledger.CategoryTrend(c.category, c.months, date.MonthOf(on))
	if len(series) == 0 {
		fmt.Println("Empty window.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s, last %d months\n\n| Month | Spent |\n|---|---:|\n", c.category, len(series))
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Month.Label(), p.Amount)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
