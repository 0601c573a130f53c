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
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	category string
	amount   float64
	period   string
	start    string
	end      string
	year     int
	month    int
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "manage spending budgets" }
func (*budgetCmd) Usage() string {
	return `ft budget set -category <category> -amount <amount> [-period <period>] [-start <date>] [-end <date>]
ft budget list
ft budget status [-y <year>] [-m <month>]

  'set' declares a spending cap for a category; it replaces any existing
  budget for the same category and period kind. The period is 'monthly',
  'weekly', or a duration such as '360h'.
  'status' reconciles each monthly budget against a month's actual
  spending.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Budgeted category (required for set)")
	f.Float64Var(&c.amount, "amount", 0, "Spending cap (required for set)")
	f.StringVar(&c.period, "period", "monthly", "Renewal period: monthly, weekly, or a duration")
	f.StringVar(&c.start, "start", "", "First day the budget applies (defaults to today)")
	f.StringVar(&c.end, "end", "", "Last day the budget applies (defaults to open-ended)")
	f.IntVar(&c.year, "y", 0, "Year for status (defaults to the current year)")
	f.IntVar(&c.month, "m", 0, "Month for status (defaults to the current month)")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch f.Arg(0) {
	case "set":
		return c.set()
	case "list", "":
		return c.list()
	case "status":
		return c.status()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown budget action %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
}

func (c *budgetCmd) set() subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	start, err := parseDay(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var end date.Date
	if c.end != "" {
		if end, err = date.Parse(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, err := decodeBudgetFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	budget := fintrack.Budget{
		Category: c.category,
		Amount:   money(c.amount),
		Period:   period,
		Start:    start,
		End:      end,
	}
	if err := book.Set(budget); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := encodeBudgetFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Budget for %s set to %s (%s)\n", budget.Category, budget.Amount, budget.Period)
	return subcommands.ExitSuccess
}

func (c *budgetCmd) list() subcommands.ExitStatus {
	book, err := decodeBudgetFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.Len() == 0 {
		fmt.Println("No budgets declared.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets\n\n| Category | Cap | Period | Start | End |\n|---|---:|---|---|---|\n")
	for _, budget := range book.All() {
		end := ""
		if !budget.End.IsZero() {
			end = budget.End.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", budget.Category, budget.Amount, budget.Period, budget.Start, end)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *budgetCmd) status() subcommands.ExitStatus {
	m, err := refMonth(c.year, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeBudgetFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	statuses := book.MonthlyStatus(ledger, m)
	if len(statuses) == 0 {
		fmt.Println("No monthly budgets to reconcile.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget status, %s\n\n", m.Label())
	fmt.Fprintf(&b, "| Category | Budget | Spent | Remaining | Used |\n|---|---:|---:|---:|---:|\n")
	for _, cat := range slices.Sorted(maps.Keys(statuses)) {
		s := statuses[cat]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", cat, s.Budget, s.Spent, s.Remaining.SignedString(), s.Used)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
