/*
Package factory converts external holiday-feed payloads into holiday records.

PURPOSE:
  The engine only ever sees resolved {date, name} pairs. Where those
  pairs come from - manual entry, a JSON feed, an iCalendar export -
  is an edge concern, and this package is that edge: it parses feed
  payloads into calendar.Holiday slices and nothing else. No fetching,
  no caching, no persistence.

SUPPORTED FEEDS:
  JSON:  [{"date": "YYYY-MM-DD", "name": "..."}]
         The common shape of public-holiday APIs.
  ICS:   iCalendar files; every all-day VEVENT contributes one holiday
         per day it spans.

USAGE:
  holidays, err := factory.ParseJSONFeed(payload)
  holidays, err := factory.ParseICSFeed(payload)

SEE ALSO:
  - calendar/normalize.go: records from any feed are normalized before use
  - api/handlers.go: the import endpoint that accepts feed payloads
*/
package factory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/warp/leave-engine/calendar"
)

// feedEntry is the JSON feed record shape.
type feedEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ParseJSONFeed parses a JSON holiday feed. Entries with a missing name
// or an unparseable date fail the whole payload; a feed is either
// trusted entirely or rejected.
func ParseJSONFeed(payload []byte) ([]calendar.Holiday, error) {
	var entries []feedEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("invalid holiday feed: %w", err)
	}

	holidays := make([]calendar.Holiday, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("holiday feed entry %d: missing name", i)
		}
		d, err := calendar.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday feed entry %d: %w", i, err)
		}
		holidays = append(holidays, calendar.Holiday{Date: d, Name: e.Name})
	}
	return holidays, nil
}

// ParseICSFeed parses an iCalendar payload. Only all-day events are
// treated as holidays; timed events (meetings etc.) are ignored. An
// all-day event spanning several days yields one record per day, all
// sharing the event summary.
func ParseICSFeed(payload []byte) ([]calendar.Holiday, error) {
	if len(payload) == 0 {
		return nil, errors.New("empty ICS payload")
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("invalid ICS payload: %w", err)
	}

	var holidays []calendar.Holiday
	for _, ev := range cal.Events() {
		name := propertyValue(ev, ics.ComponentPropertySummary)
		if name == "" {
			continue
		}

		start, startOK := allDayDate(ev, ics.ComponentPropertyDtStart)
		if !startOK {
			continue // timed event, not a holiday
		}

		// DTEND on all-day events is exclusive; a missing DTEND means a
		// single-day event.
		end, endOK := allDayDate(ev, ics.ComponentPropertyDtEnd)
		if !endOK {
			end = start.Next()
		}

		for d := start; d.Before(end); d = d.Next() {
			holidays = append(holidays, calendar.Holiday{Date: d, Name: name})
		}
	}
	return holidays, nil
}

func propertyValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}

// allDayDate extracts a date-only DTSTART/DTEND value. It accepts both
// an explicit VALUE=DATE parameter and the bare "YYYYMMDD" form; a
// value containing a time component reports false.
func allDayDate(ev *ics.VEvent, prop ics.ComponentProperty) (calendar.Date, bool) {
	p := ev.GetProperty(prop)
	if p == nil {
		return calendar.Date{}, false
	}

	val := strings.TrimSpace(p.Value)
	isDate := !strings.Contains(val, "T")
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			isDate = true
		}
	}
	if !isDate || len(val) < 8 {
		return calendar.Date{}, false
	}

	t, err := time.Parse("20060102", val[:8])
	if err != nil {
		return calendar.Date{}, false
	}
	return calendar.FromTime(t), true
}
