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
	"github.com/shopspring/decimal"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	name      string
	kind      string
	price     float64
	quantity  float64
	purchased string
	day       string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "manage investment positions" }
func (*investCmd) Usage() string {
	return `ft invest add -name <name> -type <type> -price <price> -quantity <quantity> [-purchased <date>]
ft invest price -name <name> -price <price> [-d <date>]
ft invest list
ft invest portfolio

  'add' declares a position; re-adding a name replaces it. 'price'
  updates a position's current price by hand, there is no price feed.
  'portfolio' shows the totals and the allocation by investment type.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Position name, e.g. AAPL (required for add, price)")
	f.StringVar(&c.kind, "type", "", "Investment type: stock, bond, ... (required for add)")
	f.Float64Var(&c.price, "price", 0, "Price per unit (purchase price for add, new price for price)")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of units (required for add)")
	f.StringVar(&c.purchased, "purchased", "", "Purchase date (defaults to today)")
	f.StringVar(&c.day, "d", "", "Date of the price update (defaults to today)")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch f.Arg(0) {
	case "add":
		return c.add()
	case "price":
		return c.setPrice()
	case "list", "":
		return c.list()
	case "portfolio":
		return c.portfolio()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown invest action %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
}

func (c *investCmd) add() subcommands.ExitStatus {
	purchased, err := parseDay(c.purchased)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeInvestmentsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	inv := fintrack.Investment{
		Name:          c.name,
		Type:          c.kind,
		PurchaseDate:  purchased,
		PurchasePrice: money(c.price),
		Quantity:      decimal.NewFromFloat(c.quantity),
		CurrentPrice:  money(c.price),
		LastUpdated:   purchased,
	}
	if err := book.Add(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := encodeInvestmentsFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Position %s: %s x %s on %s\n", inv.Name, inv.Quantity, inv.PurchasePrice, inv.PurchaseDate)
	return subcommands.ExitSuccess
}

func (c *investCmd) setPrice() subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeInvestmentsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	inv, err := book.SetPrice(c.name, money(c.price), on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := encodeInvestmentsFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Position %s priced at %s, P/L %s (%s)\n",
		inv.Name, inv.CurrentPrice, inv.ProfitLoss().SignedString(), inv.ProfitLossPercent().SignedString())
	return subcommands.ExitSuccess
}

func (c *investCmd) list() subcommands.ExitStatus {
	book, err := decodeInvestmentsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.Len() == 0 {
		fmt.Println("No positions declared.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Positions\n\n")
	fmt.Fprintf(&b, "| Name | Type | Quantity | Value | Cost | P/L | P/L %% |\n|---|---|---:|---:|---:|---:|---:|\n")
	for _, inv := range book.All() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			inv.Name, inv.Type, inv.Quantity, inv.CurrentValue(), inv.InitialValue(),
			inv.ProfitLoss().SignedString(), inv.ProfitLossPercent().SignedString())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *investCmd) portfolio() subcommands.ExitStatus {
	book, err := decodeInvestmentsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.Len() == 0 {
		fmt.Println("No positions declared.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintf(&b, "- Total value: %s\n", book.TotalValue())
	fmt.Fprintf(&b, "- Total profit/loss: %s\n", book.TotalProfitLoss().SignedString())
	allocation := book.Allocation()
	if len(allocation) > 0 {
		fmt.Fprintf(&b, "\n## Allocation\n\n| Type | Share |\n|---|---:|\n")
		for _, kind := range slices.Sorted(maps.Keys(allocation)) {
			fmt.Fprintf(&b, "| %s | %s |\n", kind, allocation[kind])
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
