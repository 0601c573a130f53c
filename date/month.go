package date

import (
	"fmt"
	"time"
)

// Month represents a calendar month of a specific year. It is the bucket unit
// for all aggregations.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month. Out-of-range month values roll into
// the adjacent year, so NewMonth(2024, 13) is January 2025.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) Month { return Month{y: d.Year(), m: d.Month()} }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// Next returns the following calendar month, rolling the year at December.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// Prev returns the preceding calendar month, rolling the year at January.
func (m Month) Prev() Month { return NewMonth(m.y, m.m-1) }

// AddMonths returns the month n calendar months after m; n may be negative.
func (m Month) AddMonths(n int) Month { return NewMonth(m.y, m.m+time.Month(n)) }

// Before reports whether m is strictly before x in calendar order.
func (m Month) Before(x Month) bool { return m.y < x.y || (m.y == x.y && m.m < x.m) }

// After reports whether m is strictly after x in calendar order.
func (m Month) After(x Month) bool { return x.Before(m) }

// Contains reports whether d falls within the calendar month m.
func (m Month) Contains(d Date) bool { return d.Year() == m.y && d.Month() == m.m }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// String formats the month as "2006-01".
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.y, int(m.m)) }

// Label returns the short human label for the month, e.g. "Mar 2024".
func (m Month) Label() string { return fmt.Sprintf("%s %d", m.m.String()[:3], m.y) }
