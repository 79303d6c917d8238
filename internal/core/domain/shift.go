package domain

import (
	"strings"
	"time"
)

// RequestStatus is the lifecycle state of a shift.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// validTransitions defines the allowed status transitions. Decided shifts
// have no way out.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the display label used in the dashboards.
func (s RequestStatus) Label() string {
	switch s {
	case StatusPending:
		return "Na čekanju"
	case StatusApproved:
		return "Odobreno"
	case StatusRejected:
		return "Odbijeno"
	}
	return string(s)
}

// ShiftType identifies one of the three fixed daily time windows.
type ShiftType string

const (
	ShiftFirst  ShiftType = "1"
	ShiftSecond ShiftType = "2"
	ShiftThird  ShiftType = "3"
)

// ShiftTypes lists the shift types in display order.
var ShiftTypes = []ShiftType{ShiftFirst, ShiftSecond, ShiftThird}

// Valid reports whether t is a known shift type.
func (t ShiftType) Valid() bool {
	return t == ShiftFirst || t == ShiftSecond || t == ShiftThird
}

// Label returns the short display name of the shift.
func (t ShiftType) Label() string {
	switch t {
	case ShiftFirst:
		return "Prva"
	case ShiftSecond:
		return "Druga"
	case ShiftThird:
		return "Treća"
	}
	return string(t)
}

// Window returns the fixed time window covered by the shift type.
func (t ShiftType) Window() string {
	switch t {
	case ShiftFirst:
		return "08:00 – 16:00"
	case ShiftSecond:
		return "16:00 – 00:00"
	case ShiftThird:
		return "00:00 – 08:00"
	}
	return ""
}

// DateLayout is the single calendar-date representation used for storage
// and comparison.
const DateLayout = "2006-01-02"

// Date is a calendar date in ISO 8601 date-only form (YYYY-MM-DD).
type Date string

// ParseDate validates s as an ISO 8601 date-only value.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: "date", Message: "date is required"}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", &ValidationError{Field: "date", Message: "date must be formatted as YYYY-MM-DD"}
	}
	return Date(t.Format(DateLayout)), nil
}

func (d Date) String() string { return string(d) }

// Shift is a scheduled work period for one worker on one calendar date.
type Shift struct {
	ID        string        `json:"id" bson:"_id"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Date      Date          `json:"date" bson:"date"`
	Type      ShiftType     `json:"shift_type" bson:"shift_type"`
	Status    RequestStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`

	// User is the joined profile, set only by the joined listings.
	User *User `json:"user,omitempty" bson:"user,omitempty"`
}
