package domain

import "sort"

// ShiftsByDate groups shifts under their calendar date.
type ShiftsByDate map[Date][]Shift

// CalendarDay is one date of the calendar view with its shifts.
type CalendarDay struct {
	Date   Date    `json:"date"`
	Shifts []Shift `json:"shifts"`
}

// GroupByDate buckets shifts by date, preserving their relative input order
// within each bucket.
func GroupByDate(shifts []Shift) ShiftsByDate {
	out := make(ShiftsByDate)
	for _, s := range shifts {
		out[s.Date] = append(out[s.Date], s)
	}
	return out
}

// Dates returns the distinct dates, most recent first.
func (g ShiftsByDate) Dates() []Date {
	dates := make([]Date, 0, len(g))
	for d := range g {
		dates = append(dates, d)
	}
	// ISO dates order lexically.
	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })
	return dates
}

// Days flattens the grouping into calendar order, most recent first.
func (g ShiftsByDate) Days() []CalendarDay {
	dates := g.Dates()
	days := make([]CalendarDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, CalendarDay{Date: d, Shifts: g[d]})
	}
	return days
}
