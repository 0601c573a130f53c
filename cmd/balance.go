package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the overall ledger balance" }
func (*balanceCmd) Usage() string {
	return `ft balance

  Prints total income minus total expenses over the whole ledger.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Balance: %s (%d transactions)\n", ledger.Balance().SignedString(), ledger.Len())
	return subcommands.ExitSuccess
}
