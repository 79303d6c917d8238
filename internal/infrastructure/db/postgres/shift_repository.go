package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

type ShiftRepository struct {
	db *DB
}

func NewShiftRepository(db *DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a shift. The UNIQUE (user_id, date) constraint turns a
// duplicate into domain.ErrConflict.
func (r *ShiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		INSERT INTO shifts (id, user_id, date, shift_type, status, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6)
	`
	_, err := r.db.pool.Exec(ctx, query,
		s.ID,
		s.UserID,
		string(s.Date),
		string(s.Type),
		string(s.Status),
		s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const query = `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), shift_type, status, created_at
		FROM shifts WHERE id = $1
	`
	var s domain.Shift
	if err := r.db.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Date, &s.Type, &s.Status, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cmd, err := r.db.pool.Exec(ctx, `UPDATE shifts SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) ListByUser(ctx context.Context, userID string) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.pool.Query(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), shift_type, status, created_at
		FROM shifts WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user shifts: %w", err)
	}
	defer rows.Close()

	shifts := []domain.Shift{}
	for rows.Next() {
		var s domain.Shift
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.Type, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return shifts, nil
}

const joinedSelect = `
	SELECT s.id, s.user_id, to_char(s.date, 'YYYY-MM-DD'), s.shift_type, s.status, s.created_at,
	       u.id, u.name, u.role, u.created_at
	FROM shifts s
	LEFT JOIN users u ON u.id = s.user_id
`

func (r *ShiftRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Shift, error) {
	return r.listJoined(ctx, joinedSelect+`WHERE s.status = $1 ORDER BY s.date ASC, s.created_at ASC`, string(status))
}

func (r *ShiftRepository) ListAll(ctx context.Context) ([]domain.Shift, error) {
	return r.listJoined(ctx, joinedSelect+`ORDER BY s.date DESC, s.created_at ASC`)
}

func (r *ShiftRepository) listJoined(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	shifts := []domain.Shift{}
	for rows.Next() {
		var (
			s         domain.Shift
			userID    *string
			userName  *string
			userRole  *string
			userSince *time.Time
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.Type, &s.Status, &s.CreatedAt,
			&userID, &userName, &userRole, &userSince); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		if userID != nil {
			s.User = &domain.User{ID: *userID, Name: deref(userName), Role: domain.Role(deref(userRole))}
			if userSince != nil {
				s.User.CreatedAt = *userSince
			}
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return shifts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
