package commands

import (
	"errors"
	"fmt"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/guard"
	"github.com/winner-security/shift-scheduler/internal/session"
)

var (
	// ErrNotSignedIn is returned when a view needs a session and there is none.
	ErrNotSignedIn = errors.New("not signed in, run `shiftctl login` first")
	// ErrStillLoading is returned when identity resolution has not finished.
	ErrStillLoading = errors.New("your profile is still loading, try again shortly")
)

// enterView runs the navigation guard for a view reserved to allowed. It
// reports whether the caller may render it. A resolved caller of another
// role is shown their own home view instead and ok is false.
func enterView(app *AppContext, allowed ...domain.Role) (session.Snapshot, bool, error) {
	snap := app.Resolver.Start(app.Ctx)
	return follow(app, snap, guard.Protect(snap.State, snap.Profile, allowed...))
}

func follow(app *AppContext, snap session.Snapshot, d guard.Decision) (session.Snapshot, bool, error) {
	app.Logger.Debug().
		Str("state", string(snap.State)).
		Str("action", d.Action.String()).
		Str("target", d.Target).
		Msg("guard decision")

	switch d.Action {
	case guard.Render:
		return snap, true, nil
	case guard.Wait:
		return snap, false, ErrStillLoading
	}

	if d.Target == guard.LoginPath {
		return snap, false, ErrNotSignedIn
	}
	fmt.Fprintf(app.Out, "Redirected to %s\n\n", d.Target)
	return snap, false, showHome(app, snap.Profile)
}

// showHome renders the landing view of profile's role.
func showHome(app *AppContext, profile *domain.User) error {
	if profile.Role == domain.RoleAdmin {
		dash, err := app.Client.Dashboard(app.Ctx)
		if err != nil {
			return err
		}
		renderDashboard(app.Out, profile, dash)
		return nil
	}

	shifts, err := app.Client.MyShifts(app.Ctx)
	if err != nil {
		return err
	}
	renderWorkerHome(app.Out, profile, shifts)
	return nil
}
