package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/guard"
)

// RegisterCmd creates the register command.
func RegisterCmd(app *AppContext) *cobra.Command {
	var name, role string

	cmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a worker or admin account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.SignUpInput{
				Username:    args[0],
				Password:    args[1],
				DisplayName: name,
				Role:        domain.Role(role),
			}
			if err := app.Resolver.SignUp(app.Ctx, in); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Registered %s. Run `shiftctl login %s <password>` to sign in.\n", args[0], args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleWorker), "Role: worker or admin")
	return cmd
}

// LoginCmd creates the login command.
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Sign in and remember the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Resolver.SignIn(app.Ctx, args[0], args[1]); err != nil {
				return err
			}
			if err := app.persist(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Signed in as %s.\n", args[0])

			snap := app.Resolver.Snapshot()
			_, _, err := follow(app, snap, guard.Login(snap.State, snap.Profile))
			return err
		},
	}
}

// LogoutCmd creates the logout command.
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signOutErr := app.Resolver.SignOut(app.Ctx)
			if err := app.persist(""); err != nil {
				return err
			}
			if signOutErr != nil {
				return signOutErr
			}
			fmt.Fprintln(app.Out, "Signed out.")
			return nil
		},
	}
}

// WhoamiCmd creates the whoami command.
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Resolver.Start(app.Ctx)

			fmt.Fprintf(app.Out, "Server:  %s\n", app.Client.BaseURL())
			fmt.Fprintf(app.Out, "State:   %s\n", snap.State)
			if snap.Session != nil {
				fmt.Fprintf(app.Out, "Session: %s (expires %s)\n", snap.Session.ID, snap.Session.ExpiresAt.Local().Format("2006-01-02 15:04"))
			}
			if snap.Profile != nil {
				fmt.Fprintf(app.Out, "User:    %s (%s)\n", snap.Profile.Name, snap.Profile.Role)
			}
			return snap.Err
		},
	}
}

// HomeCmd creates the home command: the index view, which sends the caller
// to their own dashboard.
func HomeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Open your dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Resolver.Start(app.Ctx)
			_, _, err := follow(app, snap, guard.Index(snap.State, snap.Profile))
			return err
		},
	}
}
