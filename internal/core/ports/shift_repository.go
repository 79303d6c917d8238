package ports

import (
	"context"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// ShiftRepository defines persistence operations for shifts.
type ShiftRepository interface {
	// Create inserts a shift. A second shift for the same (user_id, date)
	// fails with domain.ErrConflict.
	Create(ctx context.Context, shift *domain.Shift) error
	// FindByID returns domain.ErrShiftNotFound when no shift matches.
	FindByID(ctx context.Context, id string) (*domain.Shift, error)
	// UpdateStatus sets the status of one shift by id.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	// ListByUser returns the user's shifts, date descending.
	ListByUser(ctx context.Context, userID string) ([]domain.Shift, error)
	// ListByStatus returns shifts with the given status joined with their
	// profile, date ascending.
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Shift, error)
	// ListAll returns every shift joined with its profile, date descending.
	ListAll(ctx context.Context) ([]domain.Shift, error)
}
