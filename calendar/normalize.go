package calendar

import "sort"

// ObservedSuffix is appended to the name of a holiday shifted off a
// weekend. Presentation only; the Observed flag is what code should
// branch on.
const ObservedSuffix = " (observed)"

// Normalize produces the canonical holiday set used by every
// calculation step:
//
//  1. A holiday dated on a weekend advances one day at a time to the
//     nearest following non-weekend day, is renamed with ObservedSuffix,
//     and is flagged Observed.
//  2. Weekday holidays pass through unchanged.
//  3. Duplicate dates collapse to the first-seen record.
//  4. Records whose date appears in exclusions are dropped.
//  5. The result is sorted ascending by date.
//
// Normalize is idempotent: a record already on a weekday, not a
// duplicate, and not excluded comes back unchanged.
func Normalize(raw []Holiday, exclusions []Exclusion) []Holiday {
	excluded := make(map[Date]bool, len(exclusions))
	for _, ex := range exclusions {
		excluded[ex.Date] = true
	}

	seen := make(map[Date]bool, len(raw))
	out := make([]Holiday, 0, len(raw))

	for _, h := range raw {
		if h.Date.IsWeekend() {
			shifted := h.Date
			for shifted.IsWeekend() {
				shifted = shifted.Next()
			}
			h.Date = shifted
			h.Name = h.Name + ObservedSuffix
			h.Observed = true
		}

		// First-seen wins when shifted holidays collide.
		if seen[h.Date] {
			continue
		}
		seen[h.Date] = true

		if excluded[h.Date] {
			continue
		}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
