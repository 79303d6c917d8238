package client

import (
	"context"
	"net/http"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

// ShiftResult is a created shift plus the list re-fetched after the insert.
type ShiftResult struct {
	Shift  domain.Shift   `json:"shift"`
	Shifts []domain.Shift `json:"shifts"`
}

// Dashboard carries every admin tab from one fetch.
type Dashboard struct {
	Pending  []domain.Shift       `json:"pending"`
	Calendar []domain.CalendarDay `json:"calendar"`
	Hours    []domain.WorkerHours `json:"hours"`
	Workers  []domain.User        `json:"workers"`
}

type shiftBody struct {
	UserID    string `json:"user_id,omitempty"`
	Date      string `json:"date"`
	ShiftType string `json:"shift_type"`
}

type shiftList struct {
	Shifts []domain.Shift `json:"shifts"`
}

// MyShifts lists the caller's own shifts, most recent date first.
func (c *Client) MyShifts(ctx context.Context) ([]domain.Shift, error) {
	var out shiftList
	if err := c.do(ctx, "list shifts", http.MethodGet, "/v1/me/shifts", nil, &out); err != nil {
		return nil, err
	}
	return out.Shifts, nil
}

// RequestShift submits a pending shift request for the caller.
func (c *Client) RequestShift(ctx context.Context, date, shiftType string) (*ShiftResult, error) {
	var out ShiftResult
	body := shiftBody{Date: date, ShiftType: shiftType}
	if err := c.do(ctx, "request shift", http.MethodPost, "/v1/me/shifts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.do(ctx, "dashboard", http.MethodGet, "/v1/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingShifts lists pending requests, earliest date first.
func (c *Client) PendingShifts(ctx context.Context) ([]domain.Shift, error) {
	var out shiftList
	if err := c.do(ctx, "pending shifts", http.MethodGet, "/v1/admin/shifts/pending", nil, &out); err != nil {
		return nil, err
	}
	return out.Shifts, nil
}

func (c *Client) Calendar(ctx context.Context) ([]domain.CalendarDay, error) {
	var out struct {
		Days []domain.CalendarDay `json:"days"`
	}
	if err := c.do(ctx, "calendar", http.MethodGet, "/v1/admin/calendar", nil, &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}

func (c *Client) Hours(ctx context.Context) ([]domain.WorkerHours, error) {
	var out struct {
		Rows []domain.WorkerHours `json:"rows"`
	}
	if err := c.do(ctx, "hours", http.MethodGet, "/v1/admin/hours", nil, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

func (c *Client) Workers(ctx context.Context) ([]domain.User, error) {
	var out struct {
		Workers []domain.User `json:"workers"`
	}
	if err := c.do(ctx, "workers", http.MethodGet, "/v1/admin/workers", nil, &out); err != nil {
		return nil, err
	}
	return out.Workers, nil
}

// AssignShift creates an approved shift for a worker.
func (c *Client) AssignShift(ctx context.Context, userID, date, shiftType string) (*ShiftResult, error) {
	var out ShiftResult
	body := shiftBody{UserID: userID, Date: date, ShiftType: shiftType}
	if err := c.do(ctx, "assign shift", http.MethodPost, "/v1/admin/shifts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Approve(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return c.decide(ctx, "approve shift", shiftID, "approve")
}

func (c *Client) Reject(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return c.decide(ctx, "reject shift", shiftID, "reject")
}

func (c *Client) decide(ctx context.Context, op, shiftID, action string) (*domain.Shift, error) {
	var out struct {
		Shift domain.Shift `json:"shift"`
	}
	if err := c.do(ctx, op, http.MethodPost, shiftPath(shiftID, action), nil, &out); err != nil {
		return nil, err
	}
	return &out.Shift, nil
}
