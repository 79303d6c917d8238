package handler

import (
	"time"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// --- Request types ---

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type requestShiftRequest struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	ShiftType string `json:"shift_type" validate:"required,oneof=1 2 3"`
}

type assignShiftRequest struct {
	UserID    string `json:"user_id"    validate:"required"`
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	ShiftType string `json:"shift_type" validate:"required,oneof=1 2 3"`
}

// --- Response types ---

type userResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type shiftResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Date        domain.Date          `json:"date"`
	ShiftType   domain.ShiftType     `json:"shift_type"`
	ShiftLabel  string               `json:"shift_label"`
	Window      string               `json:"window"`
	Status      domain.RequestStatus `json:"status"`
	StatusLabel string               `json:"status_label"`
	CreatedAt   time.Time            `json:"created_at"`
	User        *userResponse        `json:"user,omitempty"`
}

type shiftListResponse struct {
	Shifts []shiftResponse `json:"shifts"`
}

type createShiftResponse struct {
	Shift  shiftResponse   `json:"shift"`
	Shifts []shiftResponse `json:"shifts"`
}

type decisionResponse struct {
	Shift shiftResponse `json:"shift"`
}

type calendarDayResponse struct {
	Date   domain.Date     `json:"date"`
	Shifts []shiftResponse `json:"shifts"`
}

type calendarResponse struct {
	Days []calendarDayResponse `json:"days"`
}

type hoursRowResponse struct {
	User       userResponse `json:"user"`
	ShiftCount int          `json:"shift_count"`
	Hours      int          `json:"hours"`
}

type hoursResponse struct {
	Rows []hoursRowResponse `json:"rows"`
}

type workersResponse struct {
	Workers []userResponse `json:"workers"`
}

type dashboardResponse struct {
	Pending  []shiftResponse       `json:"pending"`
	Calendar []calendarDayResponse `json:"calendar"`
	Hours    []hoursRowResponse    `json:"hours"`
	Workers  []userResponse        `json:"workers"`
}

type signInResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   *domain.Session `json:"session"`
	User      *userResponse   `json:"user,omitempty"`
}

type signUpResponse struct {
	User userResponse `json:"user"`
}

type sessionResponse struct {
	State   domain.ResolutionState `json:"state"`
	Session *domain.Session        `json:"session,omitempty"`
	User    *userResponse          `json:"user,omitempty"`
}

type viewResponse struct {
	View      string             `json:"view"`
	User      *userResponse      `json:"user,omitempty"`
	Shifts    []shiftResponse    `json:"shifts,omitempty"`
	Dashboard *dashboardResponse `json:"dashboard,omitempty"`
}
