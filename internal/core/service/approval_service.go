package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

type ApprovalService struct {
	shifts   ports.ShiftRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewApprovalService(shifts ports.ShiftRepository, profiles ports.ProfileRepository, log zerolog.Logger) *ApprovalService {
	return &ApprovalService{shifts: shifts, profiles: profiles, log: log}
}

func (s *ApprovalService) Approve(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return s.decide(ctx, shiftID, domain.StatusApproved)
}

func (s *ApprovalService) Reject(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return s.decide(ctx, shiftID, domain.StatusRejected)
}

// decide moves a pending shift to next. Repeating the decision a shift
// already carries is a no-op.
func (s *ApprovalService) decide(ctx context.Context, shiftID string, next domain.RequestStatus) (*domain.Shift, error) {
	shift, err := s.shifts.FindByID(ctx, shiftID)
	if err != nil {
		return nil, domain.Remote("find shift", err)
	}

	if shift.Status == next {
		return shift, nil
	}
	if !shift.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("decide shift: %w (from %s to %s)", domain.ErrInvalidTransition, shift.Status, next)
	}

	if err := s.shifts.UpdateStatus(ctx, shiftID, next); err != nil {
		return nil, domain.Remote("update shift status", err)
	}
	shift.Status = next

	s.log.Info().Str("shift_id", shiftID).Str("status", string(next)).Msg("shift decided")
	return shift, nil
}

func (s *ApprovalService) PendingShifts(ctx context.Context) ([]domain.Shift, error) {
	shifts, err := s.shifts.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, domain.Remote("list pending shifts", err)
	}
	return shifts, nil
}

func (s *ApprovalService) Calendar(ctx context.Context) ([]domain.CalendarDay, error) {
	all, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, domain.Remote("list shifts", err)
	}
	return domain.GroupByDate(all).Days(), nil
}

func (s *ApprovalService) Hours(ctx context.Context) ([]domain.WorkerHours, error) {
	workers, err := s.Workers(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, domain.Remote("list shifts", err)
	}
	return domain.ComputeHours(workers, all), nil
}

func (s *ApprovalService) Workers(ctx context.Context) ([]domain.User, error) {
	workers, err := s.profiles.ListByRole(ctx, domain.RoleWorker)
	if err != nil {
		return nil, domain.Remote("list workers", err)
	}
	return workers, nil
}

// Dashboard loads the pending queue, every shift and the worker list, and
// derives the calendar and hours tabs from them.
func (s *ApprovalService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	pending, err := s.PendingShifts(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, domain.Remote("list shifts", err)
	}
	workers, err := s.Workers(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Dashboard{
		Pending:  pending,
		Calendar: domain.GroupByDate(all).Days(),
		Hours:    domain.ComputeHours(workers, all),
		Workers:  workers,
	}, nil
}
