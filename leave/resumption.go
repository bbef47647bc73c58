package leave

import "github.com/warp/leave-engine/calendar"

// resolveResumption finds the first working day after expiration and
// explains any gap between it and the naive "expiration + 1 day".
//
// The walk starts at the day after expiration and records every
// non-working day it crosses: holiday matches accumulate as causing
// holidays, weekend days set the weekend flag. The adjustment is nil
// exactly when the first candidate day is already a working day.
func resolveResumption(expiration calendar.Date, cal *calendar.Calendar) (calendar.Date, *ResumptionAdjustment) {
	naiveNext := expiration.Next()

	current := naiveNext
	var causing []calendar.Holiday
	sawWeekend := false

	for !cal.IsWorkingDay(current) {
		if h, ok := cal.Lookup(current); ok {
			causing = append(causing, h)
		}
		if current.IsWeekend() {
			sawWeekend = true
		}
		current = current.Next()
	}

	if current.Equal(naiveNext) {
		return current, nil
	}

	reason := ReasonHoliday
	switch {
	case sawWeekend && len(causing) > 0:
		reason = ReasonHolidayAndWeekend
	case sawWeekend:
		reason = ReasonWeekend
	}

	return current, &ResumptionAdjustment{
		OriginalNaiveDate: naiveNext,
		Reason:            reason,
		CausingHolidays:   causing,
	}
}
