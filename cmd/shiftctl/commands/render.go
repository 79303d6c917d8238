package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/winner-security/shift-scheduler/internal/client"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func workerName(s domain.Shift) string {
	if s.User != nil {
		return s.User.Name
	}
	return s.UserID
}

func renderShifts(w io.Writer, shifts []domain.Shift, withWorker bool) {
	if len(shifts) == 0 {
		fmt.Fprintln(w, "No shifts.")
		return
	}

	tw := newTable(w)
	if withWorker {
		fmt.Fprintln(tw, "ID\tWORKER\tDATE\tSHIFT\tWINDOW\tSTATUS")
	} else {
		fmt.Fprintln(tw, "ID\tDATE\tSHIFT\tWINDOW\tSTATUS")
	}
	for _, s := range shifts {
		if withWorker {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, workerName(s), s.Date, s.Type.Label(), s.Type.Window(), s.Status.Label())
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Date, s.Type.Label(), s.Type.Window(), s.Status.Label())
	}
	_ = tw.Flush()
}

func renderCalendar(w io.Writer, days []domain.CalendarDay) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No shifts scheduled.")
		return
	}
	for _, day := range days {
		fmt.Fprintf(w, "%s\n", day.Date)
		tw := newTable(w)
		for _, s := range day.Shifts {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", workerName(s), s.Type.Label(), s.Type.Window(), s.Status.Label())
		}
		_ = tw.Flush()
	}
}

func renderHours(w io.Writer, rows []domain.WorkerHours) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No workers.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "WORKER\tSHIFTS\tHOURS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", r.User.Name, r.ShiftCount, r.Hours)
	}
	_ = tw.Flush()
}

func renderWorkers(w io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No workers.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\n", u.ID, u.Name)
	}
	_ = tw.Flush()
}

func renderWorkerHome(w io.Writer, profile *domain.User, shifts []domain.Shift) {
	fmt.Fprintf(w, "Welcome, %s\n\nMy shifts\n", profile.Name)
	renderShifts(w, shifts, false)
}

func renderDashboard(w io.Writer, profile *domain.User, d *client.Dashboard) {
	fmt.Fprintf(w, "Admin dashboard (%s)\n\n", profile.Name)
	fmt.Fprintf(w, "Pending requests (%d)\n", len(d.Pending))
	renderShifts(w, d.Pending, true)
	fmt.Fprintln(w, "\nCalendar")
	renderCalendar(w, d.Calendar)
	fmt.Fprintln(w, "\nHours")
	renderHours(w, d.Hours)
}
