package engine

import "testing"

func TestNewCalendarDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28}, // 2026 is not a leap year
		{2024, 2, 29}, // 2024 is a leap year
		{2026, 4, 30},
		{2026, 12, 31},
	}

	for _, c := range cases {
		cal := NewCalendar(c.year, c.month, nil)
		if cal.DaysInMonth != c.want {
			t.Errorf("NewCalendar(%d, %d).DaysInMonth = %d, want %d", c.year, c.month, cal.DaysInMonth, c.want)
		}
	}
}

func TestNewCalendarHolidaysFiltered(t *testing.T) {
	cal := NewCalendar(2026, 3, []string{
		"2026-03-15",
		"2026-03-16",
		"2026-04-01",    // wrong month, dropped
		"2025-03-15",    // wrong year, dropped
		"not-a-date",    // malformed, dropped
		"2026-03-32",    // invalid day, dropped
	})

	if !cal.IsFacilityHoliday(15) {
		t.Error("expected day 15 to be a facility holiday")
	}
	if !cal.IsFacilityHoliday(16) {
		t.Error("expected day 16 to be a facility holiday")
	}
	if cal.IsFacilityHoliday(1) {
		t.Error("day 1 should not be a holiday (wrong-month entry dropped)")
	}
	if cal.IsFacilityHoliday(32) {
		t.Error("malformed date should never register as a holiday")
	}
}

func TestCalendarDaysSequence(t *testing.T) {
	cal := NewCalendar(2026, 2, nil)
	days := cal.Days()
	if len(days) != 28 {
		t.Fatalf("len(Days()) = %d, want 28", len(days))
	}
	for i, d := range days {
		if d != i+1 {
			t.Fatalf("Days()[%d] = %d, want %d", i, d, i+1)
		}
	}
}

func TestCalendarDayOfMonth(t *testing.T) {
	cal := NewCalendar(2026, 8, nil)

	if d, ok := cal.DayOfMonth("2026-08-15"); !ok || d != 15 {
		t.Errorf("DayOfMonth(2026-08-15) = (%d, %v), want (15, true)", d, ok)
	}
	if _, ok := cal.DayOfMonth("2026-09-01"); ok {
		t.Error("DayOfMonth should reject a date outside the target month")
	}
	if _, ok := cal.DayOfMonth("2025-08-15"); ok {
		t.Error("DayOfMonth should reject a date outside the target year")
	}
	if _, ok := cal.DayOfMonth("bogus"); ok {
		t.Error("DayOfMonth should reject a malformed string")
	}
}

func TestCalendarCountSaturdays(t *testing.T) {
	// August 2026: Saturdays fall on 1, 8, 15, 22, 29.
	cal := NewCalendar(2026, 8, nil)
	if got := cal.CountSaturdays(); got != 5 {
		t.Errorf("CountSaturdays() = %d, want 5", got)
	}
}

func TestCalendarWeekdayKanji(t *testing.T) {
	cal := NewCalendar(2026, 8, nil)
	// 2026-08-01 is a Saturday.
	if got := cal.WeekdayKanji(1); got != "土" {
		t.Errorf("WeekdayKanji(1) = %q, want 土", got)
	}
}

func TestCalendarDateString(t *testing.T) {
	cal := NewCalendar(2026, 8, nil)
	if got := cal.DateString(5); got != "2026-08-05" {
		t.Errorf("DateString(5) = %q, want 2026-08-05", got)
	}
}
