package ports

import (
	"context"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// ShiftInput carries the fields of a shift request or assignment form.
type ShiftInput struct {
	UserID    string
	Date      string
	ShiftType string
}

// ShiftResult is returned after a shift is created. Refreshed is the list
// re-fetched after the insert: the caller's own shifts for a request, every
// shift for an assignment.
type ShiftResult struct {
	Created   *domain.Shift
	Refreshed []domain.Shift
}

// ShiftService handles worker requests and admin assignments.
type ShiftService interface {
	RequestShift(ctx context.Context, input ShiftInput) (*ShiftResult, error)
	AssignShift(ctx context.Context, input ShiftInput) (*ShiftResult, error)
	ListUserShifts(ctx context.Context, userID string) ([]domain.Shift, error)
}

// Dashboard is the admin overview loaded in one go.
type Dashboard struct {
	Pending  []domain.Shift
	Calendar []domain.CalendarDay
	Hours    []domain.WorkerHours
	Workers  []domain.User
}

// ApprovalService decides pending shifts and builds the admin read models.
type ApprovalService interface {
	Approve(ctx context.Context, shiftID string) (*domain.Shift, error)
	Reject(ctx context.Context, shiftID string) (*domain.Shift, error)
	PendingShifts(ctx context.Context) ([]domain.Shift, error)
	Calendar(ctx context.Context) ([]domain.CalendarDay, error)
	Hours(ctx context.Context) ([]domain.WorkerHours, error)
	Workers(ctx context.Context) ([]domain.User, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
