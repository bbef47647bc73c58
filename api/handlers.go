/*
handlers.go - HTTP API handlers for the leave calculation service

PURPOSE:
  Exposes the calculation engine and the holiday/exclusion calendar via
  REST. Handlers own HTTP parsing and JSON serialization; all date
  semantics live in the calendar and leave packages.

ENDPOINTS:
  Calculation:
    POST   /api/calculate          Run a leave calculation
    POST   /api/calculate/pdf      Same, rendered as a PDF document
    POST   /api/validate           Validate input without calculating

  Holidays:
    GET    /api/holidays           List raw records (?view=normalized)
    POST   /api/holidays           Create one record
    POST   /api/holidays/defaults  Seed common fixed-date holidays
    POST   /api/holidays/import    Import a JSON or ICS feed payload
    DELETE /api/holidays/{id}      Delete by ID

  Exclusions:
    GET    /api/exclusions         List not-a-holiday overrides
    POST   /api/exclusions         Create/update an override
    DELETE /api/exclusions/{date}  Remove the override on a date

ERROR HANDLING:
  Errors are returned as {"error": ..., "details": ...} with:
  - 400: validation problems, malformed bodies or dates
  - 500: storage failures

REQUEST FLOW:
  1. Parse and validate input
  2. Snapshot the stored calendar, merge inline overrides
  3. Run the engine
  4. Serialize the result

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/factory"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/report"
	"github.com/warp/leave-engine/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// Calculate runs a leave calculation.
// POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	result, _, ok := h.runCalculation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toResultDTO(result))
}

// CalculatePDF runs a calculation and renders the result as a PDF.
// POST /api/calculate/pdf
func (h *Handler) CalculatePDF(w http.ResponseWriter, r *http.Request) {
	result, req, ok := h.runCalculation(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, req, result); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="leave-summary.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Validate checks calculation input without running the engine.
// POST /api/validate
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var dto CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	_, msgs := buildRequest(dto)
	if msgs == nil {
		msgs = []string{}
	}
	writeJSON(w, http.StatusOK, ValidationResponse{Errors: msgs})
}

// runCalculation handles the shared decode/validate/calculate flow.
// The bool result reports whether a response is still pending.
func (h *Handler) runCalculation(w http.ResponseWriter, r *http.Request) (*leave.Result, leave.Request, bool) {
	var dto CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, leave.Request{}, false
	}

	req, msgs := buildRequest(dto)
	if len(msgs) > 0 {
		writeJSON(w, http.StatusBadRequest, ValidationResponse{Errors: msgs})
		return nil, leave.Request{}, false
	}

	holidays, exclusions, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holiday calendar", err)
		return nil, leave.Request{}, false
	}

	inlineHolidays, inlineExclusions, err := parseInlineOverrides(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday override", err)
		return nil, leave.Request{}, false
	}
	holidays = append(holidays, inlineHolidays...)
	exclusions = append(exclusions, inlineExclusions...)

	result, err := leave.Calculate(req, holidays, exclusions)
	if err != nil {
		status := http.StatusInternalServerError
		if leave.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Calculation failed", err)
		return nil, leave.Request{}, false
	}
	return result, req, true
}

// buildRequest converts the DTO into a domain request plus any
// validation messages. Date-format problems surface as messages, not
// transport errors, so a UI can render everything together.
func buildRequest(dto CalculateRequest) (leave.Request, []string) {
	req := leave.Request{
		Kind:         leave.Kind(strings.ToLower(strings.TrimSpace(dto.LeaveType))),
		GradeTier:    dto.GradeLevel,
		ExplicitDays: dto.NumberOfDays,
	}

	var parseMsgs []string
	if dto.StartDate != "" {
		start, err := calendar.ParseDate(dto.StartDate)
		if err != nil {
			parseMsgs = append(parseMsgs, "Invalid start date format")
		} else {
			req.StartDate = start
		}
	}

	msgs := leave.ValidateRequest(req)
	if len(parseMsgs) > 0 {
		// "Start date is required" would be misleading for a present
		// but malformed date.
		filtered := msgs[:0]
		for _, m := range msgs {
			if m != "Start date is required" {
				filtered = append(filtered, m)
			}
		}
		msgs = append(parseMsgs, filtered...)
	}
	return req, msgs
}

func parseInlineOverrides(dto CalculateRequest) ([]calendar.Holiday, []calendar.Exclusion, error) {
	var holidays []calendar.Holiday
	for _, hd := range dto.Holidays {
		d, err := calendar.ParseDate(hd.Date)
		if err != nil {
			return nil, nil, err
		}
		holidays = append(holidays, calendar.Holiday{ID: hd.ID, Date: d, Name: hd.Name})
	}

	var exclusions []calendar.Exclusion
	for _, ed := range dto.Exclusions {
		d, err := calendar.ParseDate(ed.Date)
		if err != nil {
			return nil, nil, err
		}
		exclusions = append(exclusions, calendar.Exclusion{Date: d, Name: ed.Name})
	}
	return holidays, exclusions, nil
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns holiday records.
// GET /api/holidays          raw records as stored
// GET /api/holidays?view=normalized   observed-shifted, deduplicated,
// minus exclusions - the set a calculation would actually use
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, exclusions, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	if r.URL.Query().Get("view") == "normalized" {
		holidays = calendar.Normalize(holidays, exclusions)
	}
	writeJSON(w, http.StatusOK, toHolidayDTOs(holidays))
}

// CreateHoliday adds one holiday record.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Date == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	saved, err := h.Store.SaveHoliday(r.Context(), calendar.Holiday{Date: date, Name: req.Name})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolidayDTO(saved))
}

// DeleteHoliday deletes a holiday by ID.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDefaultHolidays seeds the common fixed-date public holidays for a
// year (current year when the body omits one).
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year int `json:"year"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}

	defaults := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "New Year's Day"},
		{time.May, 1, "Workers' Day"},
		{time.October, 1, "Independence Day"},
		{time.December, 25, "Christmas Day"},
		{time.December, 26, "Boxing Day"},
	}

	holidays := make([]calendar.Holiday, len(defaults))
	for i, d := range defaults {
		holidays[i] = calendar.Holiday{
			Date: calendar.NewDate(req.Year, d.month, d.day),
			Name: d.name,
		}
	}

	if err := h.Store.SaveHolidays(r.Context(), holidays); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save default holidays", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"imported": len(holidays)})
}

// ImportHolidays ingests a holiday feed payload. The format comes from
// the ?format query parameter ("json" default, "ics").
// POST /api/holidays/import
func (h *Handler) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read feed payload", err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	var holidays []calendar.Holiday
	switch format {
	case "json":
		holidays, err = factory.ParseJSONFeed(payload)
	case "ics":
		holidays, err = factory.ParseICSFeed(payload)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported feed format %q", format), nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse feed", err)
		return
	}

	if err := h.Store.SaveHolidays(r.Context(), holidays); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save imported holidays", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"imported": len(holidays)})
}

// =============================================================================
// EXCLUSION HANDLERS
// =============================================================================

// ListExclusions returns all not-a-holiday overrides.
// GET /api/exclusions
func (h *Handler) ListExclusions(w http.ResponseWriter, r *http.Request) {
	exclusions, err := h.Store.ListExclusions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list exclusions", err)
		return
	}
	writeJSON(w, http.StatusOK, toExclusionDTOs(exclusions))
}

// CreateExclusion marks a date as not-a-holiday.
// POST /api/exclusions
func (h *Handler) CreateExclusion(w http.ResponseWriter, r *http.Request) {
	var req CreateExclusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.SaveExclusion(r.Context(), calendar.Exclusion{Date: date, Name: req.Name}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save exclusion", err)
		return
	}
	writeJSON(w, http.StatusCreated, ExclusionDTO{Date: date.String(), Name: req.Name})
}

// DeleteExclusion removes the override on a date.
// DELETE /api/exclusions/{date}
func (h *Handler) DeleteExclusion(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.DeleteExclusion(r.Context(), date); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete exclusion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
