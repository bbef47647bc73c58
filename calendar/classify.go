package calendar

// Calendar answers day-classification queries against a normalized
// holiday set. Build one with NewCalendar and treat it as immutable;
// a single Calendar serves one calculation.
type Calendar struct {
	holidays []Holiday
	byDate   map[Date]int // index into holidays
}

// NewCalendar builds a Calendar from an already-normalized holiday set
// (see Normalize). Input order is preserved.
func NewCalendar(holidays []Holiday) *Calendar {
	c := &Calendar{
		holidays: holidays,
		byDate:   make(map[Date]int, len(holidays)),
	}
	for i, h := range holidays {
		if _, ok := c.byDate[h.Date]; !ok {
			c.byDate[h.Date] = i
		}
	}
	return c
}

// Holidays returns the underlying holiday set, ascending by date.
func (c *Calendar) Holidays() []Holiday { return c.holidays }

// IsHoliday reports whether the date matches a holiday record.
func (c *Calendar) IsHoliday(d Date) bool {
	_, ok := c.byDate[d]
	return ok
}

// Lookup returns the holiday record on the given date, if any.
func (c *Calendar) Lookup(d Date) (Holiday, bool) {
	i, ok := c.byDate[d]
	if !ok {
		return Holiday{}, false
	}
	return c.holidays[i], true
}

// IsWorkingDay reports whether the date is neither a weekend day nor a
// holiday.
func (c *Calendar) IsWorkingDay(d Date) bool {
	return !d.IsWeekend() && !c.IsHoliday(d)
}
