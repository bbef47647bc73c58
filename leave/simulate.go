package leave

import "github.com/warp/leave-engine/calendar"

// simulationOutcome is what the day-walk produces.
type simulationOutcome struct {
	expiration      calendar.Date
	skippedHolidays []calendar.Holiday
	calendarDays    int
	weekendDays     int
}

// simulate walks forward from start one calendar day at a time until
// requiredWorkingDays working days have been counted. The start date
// itself is scanned and may be the first counted working day.
//
// Classification per day is exclusive: a working day is counted, a
// holiday is recorded as skipped, and a plain weekend day passes
// silently. A normalized holiday never lands on a weekend, so the
// branches cannot overlap.
//
// The caller guarantees requiredWorkingDays >= 1. Expiration is the
// last counted working day, i.e. one before the cursor after the loop.
func simulate(start calendar.Date, requiredWorkingDays int, cal *calendar.Calendar) simulationOutcome {
	current := start
	counted := 0
	out := simulationOutcome{skippedHolidays: []calendar.Holiday{}}

	for counted < requiredWorkingDays {
		if cal.IsWorkingDay(current) {
			counted++
		} else if h, ok := cal.Lookup(current); ok {
			out.skippedHolidays = append(out.skippedHolidays, h)
		} else {
			out.weekendDays++
		}
		current = current.Next()
	}

	out.expiration = current.Prev()
	out.calendarDays = start.DaysBetween(out.expiration) + 1
	return out
}
