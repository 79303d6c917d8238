// Package guard holds the one navigation decision every entry point runs
// before showing a worker or admin view. It is the only place roles are
// checked; the shift and approval engines trust whoever reaches them.
package guard

import "github.com/winner-security/shift-scheduler/internal/core/domain"

const (
	LoginPath  = "/login"
	IndexPath  = "/"
	WorkerHome = "/dashboard/worker"
	AdminHome  = "/dashboard/admin"
)

// Action is what the caller should do with the requested view.
type Action int

const (
	// Wait: identity is still being resolved; show a loading indicator.
	Wait Action = iota
	// Redirect: send the caller to Decision.Target instead.
	Redirect
	// Render: the caller may see the view.
	Render
)

func (a Action) String() string {
	switch a {
	case Wait:
		return "wait"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	}
	return "unknown"
}

// Decision is the outcome of a guard check.
type Decision struct {
	Action Action
	Target string // set for Redirect
	Reason string
}

// HomePath returns the landing view for role.
func HomePath(role domain.Role) string {
	if role == domain.RoleAdmin {
		return AdminHome
	}
	return WorkerHome
}

// Protect decides access to a view reserved for the allowed roles. With no
// roles given any resolved profile may render.
func Protect(state domain.ResolutionState, profile *domain.User, allowed ...domain.Role) Decision {
	switch state {
	case domain.StateSignedOut:
		return Decision{Action: Redirect, Target: LoginPath, Reason: "not signed in"}
	case domain.StateResolved:
		if profile == nil {
			return Decision{Action: Wait, Reason: "loading profile"}
		}
		if len(allowed) > 0 && !hasRole(allowed, profile.Role) {
			return Decision{Action: Redirect, Target: HomePath(profile.Role), Reason: "role not allowed"}
		}
		return Decision{Action: Render}
	case domain.StateSessionOnly:
		return Decision{Action: Wait, Reason: "loading profile"}
	default:
		return Decision{Action: Wait, Reason: "loading"}
	}
}

// Index decides where the root path leads.
func Index(state domain.ResolutionState, profile *domain.User) Decision {
	switch state {
	case domain.StateSignedOut:
		return Decision{Action: Redirect, Target: LoginPath, Reason: "not signed in"}
	case domain.StateResolved:
		if profile != nil {
			return Decision{Action: Redirect, Target: HomePath(profile.Role)}
		}
		return Decision{Action: Wait, Reason: "loading profile"}
	case domain.StateSessionOnly:
		return Decision{Action: Wait, Reason: "loading profile"}
	default:
		return Decision{Action: Wait, Reason: "loading"}
	}
}

// Login decides whether the login view is shown or skipped for an already
// resolved session.
func Login(state domain.ResolutionState, profile *domain.User) Decision {
	switch state {
	case domain.StateUnresolved:
		return Decision{Action: Wait, Reason: "loading"}
	case domain.StateResolved:
		if profile != nil {
			return Decision{Action: Redirect, Target: HomePath(profile.Role)}
		}
	}
	return Decision{Action: Render}
}

func hasRole(allowed []domain.Role, role domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
