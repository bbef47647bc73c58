/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  engine's domain types. Dates travel as ISO "YYYY-MM-DD" strings and
  are parsed at this boundary.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Handlers validate; DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculateRequest is the body of POST /api/calculate and /api/validate.
// Holidays and exclusions given inline are merged with the stored
// calendar for this calculation only.
type CalculateRequest struct {
	LeaveType    string         `json:"leave_type"`
	StartDate    string         `json:"start_date"`
	GradeLevel   *int           `json:"grade_level,omitempty"`
	NumberOfDays *int           `json:"number_of_days,omitempty"`
	Holidays     []HolidayDTO   `json:"holidays,omitempty"`
	Exclusions   []ExclusionDTO `json:"exclusions,omitempty"`
}

// CreateHolidayRequest is the body of POST /api/holidays.
type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// CreateExclusionRequest is the body of POST /api/exclusions.
type CreateExclusionRequest struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// HolidayDTO represents a holiday record on the wire.
type HolidayDTO struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Observed bool   `json:"observed,omitempty"`
}

// ExclusionDTO represents a not-a-holiday override on the wire.
type ExclusionDTO struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// AdjustmentDTO explains a resumption-date shift.
type AdjustmentDTO struct {
	OriginalDate    string       `json:"original_date"`
	Reason          string       `json:"reason"`
	CausingHolidays []HolidayDTO `json:"causing_holidays"`
}

// BreakdownDTO summarizes how the leave window was spent.
type BreakdownDTO struct {
	CalendarDays    int    `json:"calendar_days"`
	WorkingDays     int    `json:"working_days"`
	WeekendDays     int    `json:"weekend_days"`
	SkippedHolidays int    `json:"skipped_holidays"`
	Utilization     string `json:"utilization"`
}

// LeaveResultDTO is the calculation response.
type LeaveResultDTO struct {
	ExpirationDate      string         `json:"expiration_date"`
	ResumptionDate      string         `json:"resumption_date"`
	RequiredWorkingDays int            `json:"required_working_days"`
	SkippedHolidays     []HolidayDTO   `json:"skipped_holidays"`
	Adjustment          *AdjustmentDTO `json:"resumption_adjustment,omitempty"`
	Breakdown           BreakdownDTO   `json:"breakdown"`
}

// ValidationResponse carries validation messages; empty means valid.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toHolidayDTO(h calendar.Holiday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Date: h.Date.String(), Name: h.Name, Observed: h.Observed}
}

func toHolidayDTOs(hs []calendar.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, len(hs))
	for i, h := range hs {
		dtos[i] = toHolidayDTO(h)
	}
	return dtos
}

func toExclusionDTOs(exs []calendar.Exclusion) []ExclusionDTO {
	dtos := make([]ExclusionDTO, len(exs))
	for i, ex := range exs {
		dtos[i] = ExclusionDTO{Date: ex.Date.String(), Name: ex.Name}
	}
	return dtos
}

func toResultDTO(result *leave.Result) LeaveResultDTO {
	dto := LeaveResultDTO{
		ExpirationDate:      result.ExpirationDate.String(),
		ResumptionDate:      result.ResumptionDate.String(),
		RequiredWorkingDays: result.RequiredWorkingDays,
		SkippedHolidays:     toHolidayDTOs(result.SkippedHolidays),
		Breakdown: BreakdownDTO{
			CalendarDays:    result.Breakdown.CalendarDays,
			WorkingDays:     result.Breakdown.WorkingDays,
			WeekendDays:     result.Breakdown.WeekendDays,
			SkippedHolidays: result.Breakdown.SkippedHolidays,
			Utilization:     result.Breakdown.Utilization.String(),
		},
	}
	if adj := result.Adjustment; adj != nil {
		dto.Adjustment = &AdjustmentDTO{
			OriginalDate:    adj.OriginalNaiveDate.String(),
			Reason:          string(adj.Reason),
			CausingHolidays: toHolidayDTOs(adj.CausingHolidays),
		}
	}
	return dto
}
