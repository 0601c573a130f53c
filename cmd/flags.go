package cmd

import (
	"fmt"
	"time"

	"github.com/etnz/fintrack/date"
)

// parseDay interprets a -d flag value, defaulting to today when empty.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// refMonth interprets -y/-m flag values, defaulting to the current month
// when both are zero.
func refMonth(year, month int) (date.Month, error) {
	if year == 0 && month == 0 {
		return date.MonthOf(date.Today()), nil
	}
	now := date.MonthOf(date.Today())
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return date.Month{}, fmt.Errorf("invalid month %d: must be in 1..12", month)
	}
	return date.NewMonth(year, time.Month(month)), nil
}
