package leave

import "github.com/warp/leave-engine/calendar"

// Calculate runs one leave calculation end to end:
//
//	entitlement -> holiday normalization (minus exclusions) ->
//	day-walk simulation -> resumption resolution
//
// The holiday list may be raw (weekend dates allowed); it is normalized
// here. Calculate fails only when the entitlement cannot be resolved —
// a caller that ran ValidateRequest first always gets a Result.
func Calculate(req Request, holidays []calendar.Holiday, exclusions []calendar.Exclusion) (*Result, error) {
	required, err := ResolveEntitlement(req)
	if err != nil {
		return nil, err
	}
	if required < 1 {
		// Entering the day-walk with a non-positive target would yield
		// an expiration before the start date.
		return nil, ErrNonPositiveEntitlement
	}

	cal := calendar.NewCalendar(calendar.Normalize(holidays, exclusions))

	out := simulate(req.StartDate, required, cal)
	resumption, adjustment := resolveResumption(out.expiration, cal)

	return &Result{
		ExpirationDate:      out.expiration,
		ResumptionDate:      resumption,
		RequiredWorkingDays: required,
		SkippedHolidays:     out.skippedHolidays,
		Adjustment:          adjustment,
		Breakdown:           newBreakdown(required, out),
	}, nil
}
