package domain

import "sort"

// HoursPerShift is the fixed hour credit for one approved shift, whatever
// its type.
const HoursPerShift = 8

// WorkerHours is one row of the hours report.
type WorkerHours struct {
	User       User `json:"user"`
	ShiftCount int  `json:"shift_count"`
	Hours      int  `json:"hours"`
}

// ComputeHours counts approved shifts per user and converts them to hours.
// Rows come back sorted by hours, highest first; users with equal hours keep
// their input order.
func ComputeHours(users []User, shifts []Shift) []WorkerHours {
	approved := make(map[string]int, len(users))
	for _, s := range shifts {
		if s.Status == StatusApproved {
			approved[s.UserID]++
		}
	}

	rows := make([]WorkerHours, 0, len(users))
	for _, u := range users {
		n := approved[u.ID]
		rows = append(rows, WorkerHours{User: u, ShiftCount: n, Hours: n * HoursPerShift})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Hours > rows[j].Hours
	})
	return rows
}
