// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

// monthAbbreviations maps months to English abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// PeriodInfo holds information about a single calendar month.
type PeriodInfo struct {
	PeriodStart time.Time
	PeriodEnd   time.Time // Exclusive
	PeriodLabel string
}

// GenerateMonthLabel returns a label such as "Mar 2025".
func GenerateMonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}

// GenerateTrailingMonths returns the n calendar months ending with the month of
// now, oldest first.
func GenerateTrailingMonths(now time.Time, n int) []PeriodInfo {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	periods := make([]PeriodInfo, 0, n)
	for i := 0; i < n; i++ {
		periods = append(periods, PeriodInfo{
			PeriodStart: current,
			PeriodEnd:   current.AddDate(0, 1, 0),
			PeriodLabel: GenerateMonthLabel(current),
		})
		current = current.AddDate(0, 1, 0)
	}
	return periods
}

// dayKey returns the calendar day of date in UTC.
func dayKey(date time.Time) string {
	return date.UTC().Format(time.DateOnly)
}
