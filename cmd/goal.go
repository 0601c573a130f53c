package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	name        string
	target      float64
	current     float64
	amount      float64
	deadline    string
	category    string
	description string
	day         string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "manage saving goals" }
func (*goalCmd) Usage() string {
	return `ft goal add -name <name> -target <amount> -deadline <date> [-current <amount>] [-category <category>] [-desc <text>]
ft goal fund -name <name> -amount <amount>
ft goal list [-d <date>]
ft goal show -name <name> [-d <date>]

  'add' declares a saving goal; re-adding a name replaces the goal.
  'fund' records a contribution towards a goal.
  'list' classifies every goal as Overdue, Achieved, On Track, or Behind.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name (required for add, fund, show)")
	f.Float64Var(&c.target, "target", 0, "Target amount (required for add)")
	f.Float64Var(&c.current, "current", 0, "Amount already saved (add only)")
	f.Float64Var(&c.amount, "amount", 0, "Contribution amount (required for fund)")
	f.StringVar(&c.deadline, "deadline", "", "Deadline date (required for add)")
	f.StringVar(&c.category, "category", "", "Optional category")
	f.StringVar(&c.description, "desc", "", "Optional description")
	f.StringVar(&c.day, "d", "", "Reference date for status (defaults to today)")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch f.Arg(0) {
	case "add":
		return c.add()
	case "fund":
		return c.fund()
	case "list", "":
		return c.list()
	case "show":
		return c.show()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown goal action %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
}

func (c *goalCmd) add() subcommands.ExitStatus {
	deadline, err := date.Parse(c.deadline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -deadline: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goal := fintrack.Goal{
		Name:        c.name,
		Target:      money(c.target),
		Current:     money(c.current),
		Deadline:    deadline,
		Category:    c.category,
		Description: c.description,
	}
	if err := book.Add(goal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := encodeGoalsFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Goal %q: %s of %s by %s\n", goal.Name, goal.Current, goal.Target, goal.Deadline)
	return subcommands.ExitSuccess
}

func (c *goalCmd) fund() subcommands.ExitStatus {
	book, err := decodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goal, err := book.AddProgress(c.name, money(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := encodeGoalsFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Goal %q funded: %s of %s (%s)\n", goal.Name, goal.Current, goal.Target, goal.Progress())
	return subcommands.ExitSuccess
}

func (c *goalCmd) list() subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if book.Len() == 0 {
		fmt.Println("No goals declared.")
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Goals on %s\n\n", on)
	fmt.Fprintf(&b, "| Goal | Progress | Days left | Status |\n|---|---:|---:|---|\n")
	for _, s := range book.Summarize(on) {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", s.Name, s.Progress, s.DaysRemaining, s.Status)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *goalCmd) show() subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := decodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goal, err := book.Get(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", goal.Name)
	fmt.Fprintf(&b, "- Target: %s by %s\n", goal.Target, goal.Deadline)
	fmt.Fprintf(&b, "- Saved: %s (%s)\n", goal.Current, goal.Progress())
	fmt.Fprintf(&b, "- Days remaining: %d\n", goal.DaysRemaining(on))
	fmt.Fprintf(&b, "- Status: %s\n", goal.Status(on))
	if goal.Category != "" {
		fmt.Fprintf(&b, "- Category: %s\n", goal.Category)
	}
	if goal.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", goal.Description)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
