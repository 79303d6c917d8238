package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

type ShiftService struct {
	shifts   ports.ShiftRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewShiftService(shifts ports.ShiftRepository, profiles ports.ProfileRepository, log zerolog.Logger) *ShiftService {
	return &ShiftService{
		shifts:   shifts,
		profiles: profiles,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RequestShift creates a pending shift for the caller. The conflict check
// runs against the caller's own shifts as fetched right before the insert.
func (s *ShiftService) RequestShift(ctx context.Context, input ports.ShiftInput) (*ports.ShiftResult, error) {
	date, shiftType, err := parseShiftInput(input)
	if err != nil {
		return nil, err
	}

	mine, err := s.shifts.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, domain.Remote("list user shifts", err)
	}
	if existing, ok := domain.FindConflict(mine, input.UserID, date); ok {
		s.log.Info().Str("user_id", input.UserID).Str("date", date.String()).Str("existing", existing.ID).Msg("shift request conflicts")
		return nil, domain.ErrConflict
	}

	created, err := s.insert(ctx, input.UserID, date, shiftType, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	refreshed, err := s.shifts.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, domain.Remote("list user shifts", err)
	}
	return &ports.ShiftResult{Created: created, Refreshed: refreshed}, nil
}

// AssignShift creates an already approved shift for a worker. The conflict
// check runs against every shift in the store.
func (s *ShiftService) AssignShift(ctx context.Context, input ports.ShiftInput) (*ports.ShiftResult, error) {
	date, shiftType, err := parseShiftInput(input)
	if err != nil {
		return nil, err
	}

	target, err := s.profiles.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, &domain.ValidationError{Field: "user_id", Message: "unknown worker"}
		}
		return nil, domain.Remote("find profile", err)
	}
	if target.Role != domain.RoleWorker {
		return nil, &domain.ValidationError{Field: "user_id", Message: "shifts can only be assigned to workers"}
	}

	all, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, domain.Remote("list shifts", err)
	}
	if _, ok := domain.FindConflict(all, input.UserID, date); ok {
		return nil, domain.ErrConflict
	}

	created, err := s.insert(ctx, input.UserID, date, shiftType, domain.StatusApproved)
	if err != nil {
		return nil, err
	}

	refreshed, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, domain.Remote("list shifts", err)
	}
	return &ports.ShiftResult{Created: created, Refreshed: refreshed}, nil
}

func (s *ShiftService) ListUserShifts(ctx context.Context, userID string) ([]domain.Shift, error) {
	shifts, err := s.shifts.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Remote("list user shifts", err)
	}
	return shifts, nil
}

func (s *ShiftService) insert(ctx context.Context, userID string, date domain.Date, shiftType domain.ShiftType, status domain.RequestStatus) (*domain.Shift, error) {
	shift := &domain.Shift{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Type:      shiftType,
		Status:    status,
		CreatedAt: s.now(),
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			s.log.Error().Err(err).Str("user_id", userID).Msg("failed to insert shift")
		}
		return nil, domain.Remote("insert shift", err)
	}

	s.log.Info().
		Str("shift_id", shift.ID).
		Str("user_id", userID).
		Str("date", date.String()).
		Str("status", string(status)).
		Msg("shift created")
	return shift, nil
}

func parseShiftInput(input ports.ShiftInput) (domain.Date, domain.ShiftType, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return "", "", &domain.ValidationError{Field: "user_id", Message: "worker is required"}
	}
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return "", "", err
	}
	shiftType := domain.ShiftType(strings.TrimSpace(input.ShiftType))
	if shiftType == "" {
		return "", "", &domain.ValidationError{Field: "shift_type", Message: "shift type is required"}
	}
	if !shiftType.Valid() {
		return "", "", &domain.ValidationError{Field: "shift_type", Message: "shift type must be 1, 2 or 3"}
	}
	return date, shiftType, nil
}
