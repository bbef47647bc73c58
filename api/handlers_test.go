/*
handlers_test.go - HTTP-level tests for the calculation service

Exercises the full request path: JSON bodies in, the stored holiday
calendar merged with inline overrides, engine results serialized out.
*/
package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/store/sqlite"
)

func newTestServer(t *testing.T) (*httptest.Server, *sqlite.Store) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := api.NewRouter(api.NewHandler(store), nil)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// =============================================================================
// CALCULATION
// =============================================================================

func TestCalculate_UsesStoredHolidays(t *testing.T) {
	server, store := newTestServer(t)

	_, err := store.SaveHoliday(context.Background(), calendar.Holiday{
		Date: calendar.MustParseDate("2024-01-03"),
		Name: "Founders Day",
	})
	require.NoError(t, err)

	resp := postJSON(t, server.URL+"/api/calculate", `{
		"leave_type": "casual",
		"start_date": "2024-01-01",
		"number_of_days": 5
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[api.LeaveResultDTO](t, resp)
	assert.Equal(t, "2024-01-08", result.ExpirationDate)
	assert.Equal(t, "2024-01-09", result.ResumptionDate)
	assert.Equal(t, 5, result.RequiredWorkingDays)
	require.Len(t, result.SkippedHolidays, 1)
	assert.Equal(t, "Founders Day", result.SkippedHolidays[0].Name)
	assert.Equal(t, 8, result.Breakdown.CalendarDays)
}

func TestCalculate_InlineHolidayAndExclusion(t *testing.T) {
	server, store := newTestServer(t)

	// Stored holiday that the request excludes, plus an inline one.
	_, err := store.SaveHoliday(context.Background(), calendar.Holiday{
		Date: calendar.MustParseDate("2024-01-02"),
		Name: "Stored Holiday",
	})
	require.NoError(t, err)

	resp := postJSON(t, server.URL+"/api/calculate", `{
		"leave_type": "sick",
		"start_date": "2024-01-01",
		"number_of_days": 3,
		"holidays": [{"date": "2024-01-04", "name": "Inline Holiday"}],
		"exclusions": [{"date": "2024-01-02"}]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[api.LeaveResultDTO](t, resp)
	// Jan 1,2,3 count; Jan 4 holiday skipped only if the window reaches
	// it - with 3 working days it does not.
	assert.Equal(t, "2024-01-03", result.ExpirationDate)
	assert.Empty(t, result.SkippedHolidays)

	// Resumption walks over the inline holiday on Jan 4.
	assert.Equal(t, "2024-01-05", result.ResumptionDate)
	require.NotNil(t, result.Adjustment)
	assert.Equal(t, "holiday", result.Adjustment.Reason)
}

func TestCalculate_ValidationFailure(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculate", `{
		"leave_type": "vacation",
		"start_date": "2024-01-01",
		"grade_level": 20
	}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[api.ValidationResponse](t, resp)
	assert.Contains(t, body.Errors, "Grade level must be between 0 and 17")
}

func TestCalculate_MalformedBody(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculatePDF(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/calculate/pdf", `{
		"leave_type": "maternity",
		"start_date": "2024-01-01"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestValidate(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/validate", `{
		"leave_type": "casual",
		"start_date": "2024-1-1",
		"number_of_days": 0
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.ValidationResponse](t, resp)
	assert.Contains(t, body.Errors, "Invalid start date format")
	assert.Contains(t, body.Errors, "Number of days must be greater than 0")
}

func TestValidate_Valid(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/validate", `{
		"leave_type": "maternity",
		"start_date": "2024-01-01"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.ValidationResponse](t, resp)
	assert.Empty(t, body.Errors)
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

func TestHolidays_CreateListDelete(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/holidays", `{"date": "2024-12-25", "name": "Christmas Day"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[api.HolidayDTO](t, resp)
	assert.NotEmpty(t, created.ID)

	listResp, err := http.Get(server.URL + "/api/holidays")
	require.NoError(t, err)
	defer listResp.Body.Close()
	holidays := decode[[]api.HolidayDTO](t, listResp)
	require.Len(t, holidays, 1)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/holidays/"+created.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestHolidays_NormalizedView(t *testing.T) {
	server, _ := newTestServer(t)

	// Saturday holiday: the raw view keeps the literal date, the
	// normalized view shows the observed Monday.
	postJSON(t, server.URL+"/api/holidays", `{"date": "2024-01-06", "name": "Epiphany"}`)

	rawResp, err := http.Get(server.URL + "/api/holidays")
	require.NoError(t, err)
	defer rawResp.Body.Close()
	raw := decode[[]api.HolidayDTO](t, rawResp)
	require.Len(t, raw, 1)
	assert.Equal(t, "2024-01-06", raw[0].Date)

	normResp, err := http.Get(server.URL + "/api/holidays?view=normalized")
	require.NoError(t, err)
	defer normResp.Body.Close()
	norm := decode[[]api.HolidayDTO](t, normResp)
	require.Len(t, norm, 1)
	assert.Equal(t, "2024-01-08", norm[0].Date)
	assert.Equal(t, "Epiphany (observed)", norm[0].Name)
	assert.True(t, norm[0].Observed)
}

func TestHolidays_ImportJSONFeed(t *testing.T) {
	server, store := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/holidays/import", `[
		{"date": "2024-01-01", "name": "New Year's Day"},
		{"date": "2024-05-01", "name": "Workers' Day"}
	]`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	holidays, err := store.ListHolidays(context.Background())
	require.NoError(t, err)
	assert.Len(t, holidays, 2)
}

func TestHolidays_ImportBadFormat(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/holidays/import?format=csv", `whatever`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHolidays_Defaults(t *testing.T) {
	server, store := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/holidays/defaults", `{"year": 2024}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	holidays, err := store.ListHolidays(context.Background())
	require.NoError(t, err)
	assert.Len(t, holidays, 5)
}

// =============================================================================
// EXCLUSION ENDPOINTS
// =============================================================================

func TestExclusions_CreateListDelete(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/exclusions", `{"date": "2024-01-03", "name": "Regional only"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := http.Get(server.URL + "/api/exclusions")
	require.NoError(t, err)
	defer listResp.Body.Close()
	exclusions := decode[[]api.ExclusionDTO](t, listResp)
	require.Len(t, exclusions, 1)
	assert.Equal(t, "2024-01-03", exclusions[0].Date)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/exclusions/2024-01-03", nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	listResp2, err := http.Get(server.URL + "/api/exclusions")
	require.NoError(t, err)
	defer listResp2.Body.Close()
	assert.Empty(t, decode[[]api.ExclusionDTO](t, listResp2))
}
