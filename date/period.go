package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PeriodKind enumerates the supported budget period shapes.
type PeriodKind int

const (
	Monthly PeriodKind = iota
	Weekly
	Custom
)

func (k PeriodKind) String() string {
	switch k {
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	case Custom:
		return "custom"
	default:
		panic(fmt.Sprintf("unknown period kind %d", k))
	}
}

// Period is a closed description of how often a budget renews. Monthly and
// Weekly are calendar-aligned; Custom carries an explicit duration.
type Period struct {
	Kind  PeriodKind
	Every time.Duration // set only for Custom
}

// MonthlyPeriod returns the calendar-monthly period.
func MonthlyPeriod() Period { return Period{Kind: Monthly} }

// WeeklyPeriod returns the calendar-weekly period.
func WeeklyPeriod() Period { return Period{Kind: Weekly} }

// CustomPeriod returns a period renewing every d.
func CustomPeriod(d time.Duration) Period { return Period{Kind: Custom, Every: d} }

// ParsePeriod parses a period from its textual form: "monthly", "weekly",
// or a Go duration string (e.g. "360h") for a custom period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return MonthlyPeriod(), nil
	case "weekly", "week":
		return WeeklyPeriod(), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return Period{}, fmt.Errorf("unknown period %q: want monthly, weekly, or a duration", s)
	}
	if d <= 0 {
		return Period{}, fmt.Errorf("custom period must be positive, got %s", d)
	}
	return CustomPeriod(d), nil
}

func (p Period) String() string {
	if p.Kind == Custom {
		return p.Every.String()
	}
	return p.Kind.String()
}

// UnmarshalJSON reads a period from its textual form.
func (p *Period) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParsePeriod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalJSON writes the period in its textual form.
func (p Period) MarshalJSON() ([]byte, error) {
	str := p.String()
	return json.Marshal(&str)
}
