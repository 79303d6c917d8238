package domain

import "time"

// Session is an authenticated session issued by the identity provider.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// ResolutionState describes how much of the caller's identity is known.
type ResolutionState string

const (
	// StateUnresolved: the first session check has not completed. Consumers
	// must treat the profile as unknown, never as a guest.
	StateUnresolved ResolutionState = "unresolved"
	// StateSignedOut: the session check completed and found no session.
	StateSignedOut ResolutionState = "signed_out"
	// StateSessionOnly: a session exists but the profile is not resolved yet.
	StateSessionOnly ResolutionState = "session_only"
	// StateResolved: session and profile are both known.
	StateResolved ResolutionState = "resolved"
)
