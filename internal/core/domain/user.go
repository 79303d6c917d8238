package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Role is the application-level role carried by a profile.
type Role string

const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// MinPasswordLength is the shortest password the sign-up pre-check accepts.
const MinPasswordLength = 6

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleAdmin
}

// User is the profile record: display name and role, distinct from the raw
// authentication identity. Immutable after registration.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Identity is the credential record owned by the authentication provider.
// It shares its ID with the profile created at sign-up.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignUpInput carries the fields of a registration form.
type SignUpInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        Role
}

// Normalize trims the free-text fields and defaults the role to worker.
func (in SignUpInput) Normalize() SignUpInput {
	in.Username = strings.TrimSpace(in.Username)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if in.Role == "" {
		in.Role = RoleWorker
	}
	return in
}

// Validate is the local pre-check run before the provider is contacted.
// Call it on a normalized input.
func (in SignUpInput) Validate() error {
	switch {
	case in.DisplayName == "":
		return &ValidationError{Field: "name", Message: "display name is required"}
	case in.Username == "":
		return &ValidationError{Field: "username", Message: "username is required"}
	case utf8.RuneCountInString(in.Password) < MinPasswordLength:
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	case !in.Role.Valid():
		return &ValidationError{Field: "role", Message: "role must be worker or admin"}
	}
	return nil
}

// CredentialEmail maps a human-chosen username into the address form the
// identity provider requires, under a fixed internal domain. Addresses are
// case-insensitive, so the username is lowercased.
func CredentialEmail(username, domain string) string {
	return strings.ToLower(strings.TrimSpace(username)) + "@" + domain
}
