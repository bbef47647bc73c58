/*
Package leave implements the leave-period calculation engine.

PURPOSE:
  Given a start date, a leave-entitlement rule, and a holiday calendar,
  determine how many calendar days elapse to consume the required number
  of working days, the resulting expiration date, and the resumption
  date (the next working day), with an explanation of why resumption was
  pushed past the naive "expiration + 1 day".

KEY CONCEPTS IN THIS FILE (types.go):
  - Kind: the leave categories and their parameter requirements
  - Request: one calculation's input
  - Result: the immutable output record

DESIGN PRINCIPLES:
  1. Purity: no I/O, no persistence, no shared state. Each calculation
     consumes an immutable snapshot of the holiday list.
  2. Determinism: identical inputs always produce identical Results.
  3. Bounded work: the day-walk advances at most one holiday/weekend run
     past requiredWorkingDays counted days, so it always terminates.

SEE ALSO:
  - entitlement.go: Kind -> required working days
  - simulate.go: the core day-walk
  - resumption.go: next-working-day resolution with cause reporting
  - validate.go: pre-computation input checks
*/
package leave

import (
	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// LEAVE KINDS
// =============================================================================

// Kind is a leave category. Each kind fixes how the working-day
// entitlement is derived.
type Kind string

const (
	KindVacation   Kind = "vacation"   // entitlement from grade tier
	KindMaternity  Kind = "maternity"  // fixed entitlement
	KindCasual     Kind = "casual"     // explicit day count
	KindStudy      Kind = "study"      // explicit day count
	KindSick       Kind = "sick"       // explicit day count
	KindSabbatical Kind = "sabbatical" // explicit day count
)

// Kinds lists every supported leave kind.
func Kinds() []Kind {
	return []Kind{KindVacation, KindMaternity, KindCasual, KindStudy, KindSick, KindSabbatical}
}

// Valid reports whether k is a known leave kind.
func (k Kind) Valid() bool {
	switch k {
	case KindVacation, KindMaternity, KindCasual, KindStudy, KindSick, KindSabbatical:
		return true
	}
	return false
}

// RequiresGradeTier reports whether the kind derives its entitlement
// from the employee's grade tier.
func (k Kind) RequiresGradeTier() bool { return k == KindVacation }

// RequiresExplicitDays reports whether the kind needs a caller-supplied
// day count.
func (k Kind) RequiresExplicitDays() bool {
	switch k {
	case KindCasual, KindStudy, KindSick, KindSabbatical:
		return true
	}
	return false
}

// =============================================================================
// REQUEST
// =============================================================================

// Request is the input to one leave calculation.
// GradeTier is required iff Kind == KindVacation; ExplicitDays is
// required iff the kind is one of the explicit-day-count kinds.
type Request struct {
	Kind         Kind
	StartDate    calendar.Date
	GradeTier    *int
	ExplicitDays *int
}

// =============================================================================
// RESULT
// =============================================================================

// AdjustmentReason explains why the resumption date differs from the
// day immediately after expiration.
type AdjustmentReason string

const (
	ReasonHoliday           AdjustmentReason = "holiday"
	ReasonWeekend           AdjustmentReason = "weekend"
	ReasonHolidayAndWeekend AdjustmentReason = "holiday_and_weekend"
)

// ResumptionAdjustment reports that the resumption date was pushed past
// the naive "expiration + 1 day", and why.
type ResumptionAdjustment struct {
	OriginalNaiveDate calendar.Date
	Reason            AdjustmentReason
	// CausingHolidays lists the holiday records crossed on the way to
	// the resumption date. Empty when only weekends caused the shift.
	CausingHolidays []calendar.Holiday
}

// Result is the outcome of one leave calculation. Never mutated after
// construction.
type Result struct {
	ExpirationDate      calendar.Date
	ResumptionDate      calendar.Date
	RequiredWorkingDays int
	// SkippedHolidays are the holidays that fell inside the leave
	// window (weekends inside the window are not recorded).
	SkippedHolidays []calendar.Holiday
	// Adjustment is nil when resumption is simply the day after
	// expiration.
	Adjustment *ResumptionAdjustment
	Breakdown  Breakdown
}
