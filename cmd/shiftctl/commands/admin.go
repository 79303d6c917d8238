package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// AdminCmd groups the admin views and actions.
func AdminCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard, approvals and hours",
	}

	cmd.AddCommand(
		adminView(app, "dashboard", "Show every admin tab", func() error {
			dash, err := app.Client.Dashboard(app.Ctx)
			if err != nil {
				return err
			}
			profile := app.Resolver.Snapshot().Profile
			renderDashboard(app.Out, profile, dash)
			return nil
		}),
		adminView(app, "pending", "List pending shift requests", func() error {
			shifts, err := app.Client.PendingShifts(app.Ctx)
			if err != nil {
				return err
			}
			renderShifts(app.Out, shifts, true)
			return nil
		}),
		adminView(app, "calendar", "Show all shifts by date", func() error {
			days, err := app.Client.Calendar(app.Ctx)
			if err != nil {
				return err
			}
			renderCalendar(app.Out, days)
			return nil
		}),
		adminView(app, "hours", "Show approved hours per worker", func() error {
			rows, err := app.Client.Hours(app.Ctx)
			if err != nil {
				return err
			}
			renderHours(app.Out, rows)
			return nil
		}),
		adminView(app, "workers", "List workers", func() error {
			users, err := app.Client.Workers(app.Ctx)
			if err != nil {
				return err
			}
			renderWorkers(app.Out, users)
			return nil
		}),
		assignCmd(app),
		decisionCmd(app, "approve", "Approve a pending shift", func(ctx context.Context, id string) (*domain.Shift, error) {
			return app.Client.Approve(ctx, id)
		}),
		decisionCmd(app, "reject", "Reject a pending shift", func(ctx context.Context, id string) (*domain.Shift, error) {
			return app.Client.Reject(ctx, id)
		}),
	)
	return cmd
}

func adminView(app *AppContext, use, short string, show func() error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok, err := enterView(app, domain.RoleAdmin); err != nil || !ok {
				return err
			}
			return show()
		},
	}
}

func assignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <worker-id> <YYYY-MM-DD> <1|2|3>",
		Short: "Assign an approved shift to a worker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, shiftType, err := parseShiftArgs(args[1], args[2])
			if err != nil {
				return err
			}
			if _, ok, err := enterView(app, domain.RoleAdmin); err != nil || !ok {
				return err
			}

			days, err := app.Client.Calendar(app.Ctx)
			if err != nil {
				return err
			}
			var all []domain.Shift
			for _, d := range days {
				all = append(all, d.Shifts...)
			}
			if existing, found := domain.FindConflict(all, args[0], date); found {
				return conflictError(existing)
			}

			res, err := app.Client.AssignShift(app.Ctx, args[0], string(date), string(shiftType))
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Assigned %s shift on %s to %s.\n", res.Shift.Type.Label(), res.Shift.Date, workerName(res.Shift))
			return nil
		},
	}
}

func decisionCmd(app *AppContext, use, short string, decide func(context.Context, string) (*domain.Shift, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <shift-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok, err := enterView(app, domain.RoleAdmin); err != nil || !ok {
				return err
			}
			shift, err := decide(app.Ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Shift %s on %s is now %s.\n", shift.ID, shift.Date, shift.Status.Label())
			return nil
		},
	}
}
