package fintrack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/fintrack/date"
)

// Goal is a named saving target with a deadline. The name is the identity
// key: a book holds at most one goal per name.
type Goal struct {
	Name        string
	Target      Money
	Current     Money // never automatically capped at Target
	Deadline    date.Date
	Category    string
	Description string
}

// Validate checks the goal for correctness before it enters a book.
func (g Goal) Validate() error {
	if g.Name == "" {
		return errors.New("goal name is required")
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s", g.Target)
	}
	if g.Current.IsNegative() {
		return fmt.Errorf("goal current amount must not be negative, got %s", g.Current)
	}
	if g.Deadline.IsZero() {
		return errors.New("goal deadline is required")
	}
	return nil
}

// Progress returns the share of the target already funded, or 0 when the
// target is not positive.
func (g Goal) Progress() Percent {
	return g.Current.PercentOf(g.Target)
}

// DaysRemaining returns the whole days from the reference date to the
// deadline. It is negative once the deadline has passed.
func (g Goal) DaysRemaining(on date.Date) int {
	return on.DaysUntil(g.Deadline)
}

// GoalStatus classifies a goal against its deadline and progress.
type GoalStatus string

const (
	StatusOverdue  GoalStatus = "Overdue"
	StatusAchieved GoalStatus = "Achieved"
	StatusOnTrack  GoalStatus = "On Track"
	StatusBehind   GoalStatus = "Behind"
)

// Status classifies the goal on the reference date. Precedence: a passed
// deadline is Overdue regardless of progress, full progress is Achieved,
// then the on-track bar rises as fewer days remain: the goal is On Track
// while progress >= 100 - days/30 x 10.
func (g Goal) Status(on date.Date) GoalStatus {
	days := g.DaysRemaining(on)
	progress := float64(g.Progress())
	switch {
	case days < 0:
		return StatusOverdue
	case progress >= 100:
		return StatusAchieved
	case progress >= 100-float64(days)/30*10:
		return StatusOnTrack
	default:
		return StatusBehind
	}
}

// MarshalJSON writes the goal with a stable field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", g.Name)
	w.Append("target", g.Target.Decimal())
	w.Append("current", g.Current.Decimal())
	w.Optional("currency", g.Target.Currency())
	w.Append("deadline", g.Deadline)
	w.Optional("category", g.Category)
	w.Optional("description", g.Description)
	return w.MarshalJSON()
}

// GoalBook holds the declared goals, keyed by name.
type GoalBook struct {
	goals []Goal
}

// NewGoalBook creates an empty goal book.
func NewGoalBook() *GoalBook {
	return &GoalBook{goals: make([]Goal, 0)}
}

// Add validates and records a goal. A prior goal with the same name is
// replaced: the last writer wins.
func (gb *GoalBook) Add(g Goal) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	gb.goals = slices.DeleteFunc(gb.goals, func(x Goal) bool { return x.Name == g.Name })
	gb.goals = append(gb.goals, g)
	return nil
}

// Get returns the goal with the given name, or ErrNotFound.
func (gb *GoalBook) Get(name string) (Goal, error) {
	for _, g := range gb.goals {
		if g.Name == name {
			return g, nil
		}
	}
	return Goal{}, fmt.Errorf("goal %q: %w", name, ErrNotFound)
}

// All returns all goals.
func (gb *GoalBook) All() []Goal {
	return slices.Clone(gb.goals)
}

// Len returns the number of goals.
func (gb *GoalBook) Len() int { return len(gb.goals) }

// ByCategory returns the goals declared under the given category.
func (gb *GoalBook) ByCategory(category string) []Goal {
	var out []Goal
	for _, g := range gb.goals {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// AddProgress adds the amount to the named goal's current amount, in place.
// The amount may exceed the target; progress is never capped. It returns the
// updated goal, or ErrNotFound.
func (gb *GoalBook) AddProgress(name string, amount Money) (Goal, error) {
	for i, g := range gb.goals {
		if g.Name == name {
			gb.goals[i].Current = g.Current.Add(amount)
			return gb.goals[i], nil
		}
	}
	return Goal{}, fmt.Errorf("goal %q: %w", name, ErrNotFound)
}

// GoalSummary is the per-goal line of a batch evaluation.
type GoalSummary struct {
	Name          string
	Progress      Percent
	DaysRemaining int
	Status        GoalStatus
}

// Summarize evaluates every goal against the reference date.
func (gb *GoalBook) Summarize(on date.Date) []GoalSummary {
	summaries := make([]GoalSummary, 0, len(gb.goals))
	for _, g := range gb.goals {
		summaries = append(summaries, GoalSummary{
			Name:          g.Name,
			Progress:      g.Progress(),
			DaysRemaining: g.DaysRemaining(on),
			Status:        g.Status(on),
		})
	}
	return summaries
}
