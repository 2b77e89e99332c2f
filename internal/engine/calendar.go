/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/calendar.go
==============================================================================

DESCRIPTION:
    Computes the day index for a target (year, month) and classifies each
    day as weekday/Saturday/Sunday or facility holiday. Every other engine
    component (variables, constraints, extractor) walks days through this
    calendar rather than re-deriving month length or weekday facts.

SYNTAX EXPLANATION:
    - time.Date(year, month+1, 0, ...): day 0 of the next month rolls back
      to the last day of this month, a standard Go idiom.
*/
package engine

import "time"

// Calendar holds the day-by-day facts for one (year, month) target.
type Calendar struct {
	Year       int
	Month      int
	DaysInMonth int
	holidays   map[int]bool // day-of-month -> true
}

// NewCalendar builds a Calendar for (year, month), retaining only Holiday
// entries whose date falls within that month. Entries with a malformed
// "YYYY-MM-DD" date string are silently skipped.
func NewCalendar(year, month int, holidayDates []string) *Calendar {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cal := &Calendar{
		Year:        year,
		Month:       month,
		DaysInMonth: lastDay,
		holidays:    make(map[int]bool),
	}

	for _, raw := range holidayDates {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			continue
		}
		if t.Year() != year || int(t.Month()) != month {
			continue
		}
		cal.holidays[t.Day()] = true
	}

	return cal
}

// Days returns 1..DaysInMonth.
func (c *Calendar) Days() []int {
	days := make([]int, c.DaysInMonth)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// Weekday returns the Go time.Weekday for day-of-month d.
func (c *Calendar) Weekday(d int) time.Weekday {
	return time.Date(c.Year, time.Month(c.Month), d, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsSaturday reports whether day d falls on a Saturday.
func (c *Calendar) IsSaturday(d int) bool {
	return c.Weekday(d) == time.Saturday
}

// CountSaturdays counts Saturdays in the month.
func (c *Calendar) CountSaturdays() int {
	count := 0
	for _, d := range c.Days() {
		if c.IsSaturday(d) {
			count++
		}
	}
	return count
}

// IsFacilityHoliday reports whether day d is a facility closure.
func (c *Calendar) IsFacilityHoliday(d int) bool {
	return c.holidays[d]
}

// DateString formats day d as "YYYY-MM-DD".
func (c *Calendar) DateString(d int) string {
	return time.Date(c.Year, time.Month(c.Month), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// DayOfMonth parses a "YYYY-MM-DD" string and returns its day-of-month if it
// falls within this calendar's (year, month); ok is false for malformed
// strings or dates outside the target month.
func (c *Calendar) DayOfMonth(dateStr string) (day int, ok bool) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, false
	}
	if t.Year() != c.Year || int(t.Month()) != c.Month {
		return 0, false
	}
	return t.Day(), true
}

// weekdayKanji maps Go's time.Weekday to the single-character kanji used on
// the exported workbook's header row.
var weekdayKanji = map[time.Weekday]string{
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
	time.Sunday:    "日",
}

// WeekdayKanji returns the kanji label for day d's weekday.
func (c *Calendar) WeekdayKanji(d int) string {
	return weekdayKanji[c.Weekday(d)]
}
