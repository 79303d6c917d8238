package handler

import (
	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

// --- Request → Service input ---

func toRequestInput(req requestShiftRequest, userID string) ports.ShiftInput {
	return ports.ShiftInput{UserID: userID, Date: req.Date, ShiftType: req.ShiftType}
}

func toAssignInput(req assignShiftRequest) ports.ShiftInput {
	return ports.ShiftInput{UserID: req.UserID, Date: req.Date, ShiftType: req.ShiftType}
}

func toSignUpInput(req signUpRequest) domain.SignUpInput {
	return domain.SignUpInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.Name,
		Role:        domain.Role(req.Role),
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt.UTC()}
}

func toUserResponsePtr(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	r := toUserResponse(*u)
	return &r
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toShiftResponse(s domain.Shift) shiftResponse {
	return shiftResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Date:        s.Date,
		ShiftType:   s.Type,
		ShiftLabel:  s.Type.Label(),
		Window:      s.Type.Window(),
		Status:      s.Status,
		StatusLabel: s.Status.Label(),
		CreatedAt:   s.CreatedAt.UTC(),
		User:        toUserResponsePtr(s.User),
	}
}

func toShiftResponses(shifts []domain.Shift) []shiftResponse {
	out := make([]shiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftResponse(s))
	}
	return out
}

func toCalendarResponse(days []domain.CalendarDay) []calendarDayResponse {
	out := make([]calendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, calendarDayResponse{Date: d.Date, Shifts: toShiftResponses(d.Shifts)})
	}
	return out
}

func toHoursResponse(rows []domain.WorkerHours) []hoursRowResponse {
	out := make([]hoursRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, hoursRowResponse{User: toUserResponse(r.User), ShiftCount: r.ShiftCount, Hours: r.Hours})
	}
	return out
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	return dashboardResponse{
		Pending:  toShiftResponses(d.Pending),
		Calendar: toCalendarResponse(d.Calendar),
		Hours:    toHoursResponse(d.Hours),
		Workers:  toUserResponses(d.Workers),
	}
}
