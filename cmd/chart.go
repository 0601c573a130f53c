package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack/chart"
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	output   string
	category string
	months   int
	year     int
	day      string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a report as a PNG image" }
func (*chartCmd) Usage() string {
	return `ft chart spending -o <file>
ft chart report [-y <year>] -o <file>
ft chart trend -category <category> [-months <n>] [-d <date>] -o <file>
ft chart savings [-months <n>] [-d <date>] -o <file>
ft chart allocation -o <file>

  Renders the spending pie, the yearly income-vs-expenses lines, a
  category trend, the savings rate, or the portfolio allocation pie as a
  PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output PNG file (required)")
	f.StringVar(&c.category, "category", "", "Category for the trend chart")
	f.IntVar(&c.months, "months", 6, "Window size in months for trend and savings")
	f.IntVar(&c.year, "y", 0, "Year for the report chart (defaults to the current year)")
	f.StringVar(&c.day, "d", "", "Reference date for trend and savings (defaults to today)")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
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

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch f.Arg(0) {
	case "spending":
		err = chart.Spending(out, ledger.SpendingByCategory())
	case "report":
		year := c.year
		if year == 0 {
			year = on.Year()
		}
		err = chart.IncomeVsExpenses(out, ledger.IncomeVsExpenses(year))
	case "trend":
		if c.category == "" {
			fmt.Fprintln(os.Stderr, "Error: -category is required for a trend chart")
			return subcommands.ExitUsageError
		}
		err = chart.CategoryTrend(out, c.category, ledger.CategoryTrend(c.category, c.months, date.MonthOf(on)))
	case "savings":
		err = chart.SavingsRate(out, ledger.SavingsRates(c.months, date.MonthOf(on)))
	case "allocation":
		book, derr := decodeInvestmentsFile()
		if derr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", derr)
			return subcommands.ExitFailure
		}
		err = chart.Allocation(out, book.Allocation())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
