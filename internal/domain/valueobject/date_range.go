// Package valueobject contains domain value objects for the Money Manager system.
package valueobject

import (
	"errors"
	"strings"
	"time"
)

// AnalyticsPeriod is the reporting range token accepted by the analytics views.
type AnalyticsPeriod string

const (
	AnalyticsPeriodWeekly  AnalyticsPeriod = "weekly"
	AnalyticsPeriodMonthly AnalyticsPeriod = "monthly"
	AnalyticsPeriodYearly  AnalyticsPeriod = "yearly"
	AnalyticsPeriodCustom  AnalyticsPeriod = "custom"
)

// IsValid reports whether p is a known period. The empty token is treated as custom.
func (p AnalyticsPeriod) IsValid() bool {
	switch p {
	case "", AnalyticsPeriodWeekly, AnalyticsPeriodMonthly, AnalyticsPeriodYearly, AnalyticsPeriodCustom:
		return true
	}
	return false
}

// DateRange is an inclusive time range. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ErrUnparseableDate is returned by ParseDate for values in neither supported layout.
var ErrUnparseableDate = errors.New("unparseable date")

// IsInverted reports whether both bounds are set and End precedes Start.
func (r DateRange) IsInverted() bool {
	return r.Start != nil && r.End != nil && r.End.Before(*r.Start)
}

// ResolveWindow turns a period token into a concrete range ending at now.
// Weekly covers the last seven days, monthly and yearly go back one calendar
// month or year to the same instant. Custom and empty tokens use the explicit
// bounds, which may be nil.
func ResolveWindow(period AnalyticsPeriod, explicit DateRange, now time.Time) DateRange {
	now = now.UTC()
	var start time.Time

	switch period {
	case AnalyticsPeriodWeekly:
		start = now.AddDate(0, 0, -7)
	case AnalyticsPeriodMonthly:
		start = now.AddDate(0, -1, 0)
	case AnalyticsPeriodYearly:
		start = now.AddDate(-1, 0, 0)
	default:
		return explicit
	}

	return DateRange{Start: &start, End: &now}
}

// ParseDate accepts either a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
// The returned flag is true when only a calendar date was given.
func ParseDate(value string) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), true, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, ErrUnparseableDate
}

// ParseRangeBound parses an optional range bound. Plain calendar dates used as an
// upper bound are extended to the last instant of that day so the day is included.
func ParseRangeBound(value string, upper bool) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	t, dateOnly, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	if upper && dateOnly {
		t = EndOfDay(t)
	}
	return &t, nil
}

// EndOfDay returns the last representable instant of t's calendar day in UTC.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
