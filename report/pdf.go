// Package report renders leave calculation results as PDF documents.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/leave-engine/leave"
)

// Write renders a one-page summary of a calculation to w.
func Write(w io.Writer, req leave.Request, result *leave.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Calculation Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	line := func(format string, args ...any) {
		pdf.Cell(0, 8, fmt.Sprintf(format, args...))
		pdf.Ln(7)
	}

	line("Leave type: %s", req.Kind)
	line("Start date: %s", req.StartDate)
	line("Working days: %d", result.RequiredWorkingDays)
	line("Leave expires: %s", result.ExpirationDate)
	line("Resume work: %s", result.ResumptionDate)
	pdf.Ln(3)

	line("Calendar days in window: %d", result.Breakdown.CalendarDays)
	line("Weekend days crossed: %d", result.Breakdown.WeekendDays)

	if len(result.SkippedHolidays) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		line("Public holidays during leave")
		pdf.SetFont("Helvetica", "", 12)
		for _, h := range result.SkippedHolidays {
			line("  %s  %s", h.Date, h.Name)
		}
	}

	if adj := result.Adjustment; adj != nil {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		line("Resumption adjusted")
		pdf.SetFont("Helvetica", "", 12)
		line("Would have been %s, moved due to: %s", adj.OriginalNaiveDate, reasonLabel(adj.Reason))
		for _, h := range adj.CausingHolidays {
			line("  %s  %s", h.Date, h.Name)
		}
	}

	return pdf.Output(w)
}

func reasonLabel(r leave.AdjustmentReason) string {
	switch r {
	case leave.ReasonHoliday:
		return "public holiday"
	case leave.ReasonWeekend:
		return "weekend"
	case leave.ReasonHolidayAndWeekend:
		return "public holiday and weekend"
	default:
		return string(r)
	}
}
