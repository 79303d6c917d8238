package domain

// FindConflict scans shifts for one already held by userID on date, in any
// status. It is only as fresh as the slice it is given; the store's
// uniqueness constraint is the real guarantee.
func FindConflict(shifts []Shift, userID string, date Date) (Shift, bool) {
	for _, s := range shifts {
		if s.UserID == userID && s.Date == date {
			return s, true
		}
	}
	return Shift{}, false
}
