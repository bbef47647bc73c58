package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/calendar"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := calendar.ParseDate("2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 8, d.Day())
	assert.Equal(t, "2024-01-08", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "01/02/2024"} {
		_, err := calendar.ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDate_IsWeekend(t *testing.T) {
	// 2024-01-01 is a Monday.
	assert.False(t, calendar.NewDate(2024, time.January, 1).IsWeekend())
	assert.True(t, calendar.NewDate(2024, time.January, 6).IsWeekend())  // Saturday
	assert.True(t, calendar.NewDate(2024, time.January, 7).IsWeekend())  // Sunday
	assert.False(t, calendar.NewDate(2024, time.January, 8).IsWeekend()) // Monday
}

func TestDate_Arithmetic(t *testing.T) {
	d := calendar.NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.Next().String()) // leap year
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.DaysBetween(d.AddDays(2)))
	assert.Equal(t, -1, d.DaysBetween(d.Prev()))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date calendar.Date `json:"date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-12"}`), &p))
	assert.Equal(t, calendar.NewDate(2024, time.June, 12), p.Date)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-06-12"}`, string(raw))

	assert.Error(t, json.Unmarshal([]byte(`{"date":42}`), &p))
}
