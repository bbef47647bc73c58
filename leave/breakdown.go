package leave

import "github.com/shopspring/decimal"

// Breakdown summarizes how the leave window was spent. All counts are
// calendar facts derived from the simulation; Utilization is the share
// of the window consumed by counted working days, kept as an exact
// decimal so presentation layers can round however they like.
type Breakdown struct {
	CalendarDays    int
	WorkingDays     int
	WeekendDays     int
	SkippedHolidays int
	Utilization     decimal.Decimal
}

func newBreakdown(requiredWorkingDays int, out simulationOutcome) Breakdown {
	b := Breakdown{
		CalendarDays:    out.calendarDays,
		WorkingDays:     requiredWorkingDays,
		WeekendDays:     out.weekendDays,
		SkippedHolidays: len(out.skippedHolidays),
	}
	if out.calendarDays > 0 {
		b.Utilization = decimal.NewFromInt(int64(requiredWorkingDays)).
			Div(decimal.NewFromInt(int64(out.calendarDays))).
			Round(4)
	}
	return b
}
