package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// parseShiftArgs is the local check run before anything is sent.
func parseShiftArgs(date, shiftType string) (domain.Date, domain.ShiftType, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return "", "", err
	}
	t := domain.ShiftType(shiftType)
	if !t.Valid() {
		return "", "", &domain.ValidationError{Field: "shift_type", Message: "shift type must be 1, 2 or 3"}
	}
	return d, t, nil
}

// conflictError describes a fast-fail conflict found in the fetched list.
func conflictError(existing domain.Shift) error {
	return fmt.Errorf("%w (%s, %s, %s)", domain.ErrConflict, existing.Date, existing.Type.Label(), existing.Status.Label())
}

// ShiftsCmd creates the shifts command: the worker's own list.
func ShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shifts",
		Short: "List your shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, ok, err := enterView(app, domain.RoleWorker)
			if err != nil || !ok {
				return err
			}
			shifts, err := app.Client.MyShifts(app.Ctx)
			if err != nil {
				return err
			}
			renderWorkerHome(app.Out, snap.Profile, shifts)
			return nil
		},
	}
}

// RequestCmd creates the request command.
func RequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "request <YYYY-MM-DD> <1|2|3>",
		Short: "Request a shift (1 = 08-16, 2 = 16-00, 3 = 00-08)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, shiftType, err := parseShiftArgs(args[0], args[1])
			if err != nil {
				return err
			}

			snap, ok, err := enterView(app, domain.RoleWorker)
			if err != nil || !ok {
				return err
			}

			current, err := app.Client.MyShifts(app.Ctx)
			if err != nil {
				return err
			}
			if existing, found := domain.FindConflict(current, snap.Profile.ID, date); found {
				return conflictError(existing)
			}

			res, err := app.Client.RequestShift(app.Ctx, string(date), string(shiftType))
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Requested %s shift on %s (%s).\n\n", res.Shift.Type.Label(), res.Shift.Date, res.Shift.Status.Label())
			renderShifts(app.Out, res.Shifts, false)
			return nil
		},
	}
}
