package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

type stubApprovalService struct {
	approveFn   func(ctx context.Context, id string) (*domain.Shift, error)
	rejectFn    func(ctx context.Context, id string) (*domain.Shift, error)
	dashboardFn func(ctx context.Context) (*ports.Dashboard, error)
	hours       []domain.WorkerHours
	calendar    []domain.CalendarDay
	workers     []domain.User
	pending     []domain.Shift
}

func (s *stubApprovalService) Approve(ctx context.Context, id string) (*domain.Shift, error) {
	return s.approveFn(ctx, id)
}

func (s *stubApprovalService) Reject(ctx context.Context, id string) (*domain.Shift, error) {
	return s.rejectFn(ctx, id)
}

func (s *stubApprovalService) PendingShifts(context.Context) ([]domain.Shift, error) {
	return s.pending, nil
}

func (s *stubApprovalService) Calendar(context.Context) ([]domain.CalendarDay, error) {
	return s.calendar, nil
}

func (s *stubApprovalService) Hours(context.Context) ([]domain.WorkerHours, error) {
	return s.hours, nil
}

func (s *stubApprovalService) Workers(context.Context) ([]domain.User, error) {
	return s.workers, nil
}

func (s *stubApprovalService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	return s.dashboardFn(ctx)
}

func TestAdminHandler_Approve(t *testing.T) {
	e := newTestEcho()
	approvals := &stubApprovalService{
		approveFn: func(ctx context.Context, id string) (*domain.Shift, error) {
			return &domain.Shift{ID: id, Status: domain.StatusApproved}, nil
		},
	}
	handler := NewAdminHandler(&stubShiftService{}, approvals)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/admin/shifts/s1/approve", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp decisionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Shift.ID != "s1" || resp.Shift.Status != domain.StatusApproved || resp.Shift.StatusLabel != "Odobreno" {
		t.Fatalf("unexpected shift: %+v", resp.Shift)
	}
}

func TestAdminHandler_Reject_InvalidTransition(t *testing.T) {
	e := newTestEcho()
	approvals := &stubApprovalService{
		rejectFn: func(ctx context.Context, id string) (*domain.Shift, error) {
			return nil, fmt.Errorf("decide shift: %w", domain.ErrInvalidTransition)
		},
	}
	handler := NewAdminHandler(&stubShiftService{}, approvals)

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/admin/shifts/s1/reject", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Reject(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAdminHandler_Assign(t *testing.T) {
	e := newTestEcho()
	shifts := &stubShiftService{
		assignFn: func(ctx context.Context, in ports.ShiftInput) (*ports.ShiftResult, error) {
			if in.UserID != "w2" || in.Date != "2024-03-04" || in.ShiftType != "3" {
				t.Fatalf("unexpected input: %+v", in)
			}
			created := domain.Shift{ID: "s9", UserID: "w2", Date: "2024-03-04", Type: domain.ShiftThird, Status: domain.StatusApproved}
			return &ports.ShiftResult{Created: &created, Refreshed: []domain.Shift{created}}, nil
		},
	}
	handler := NewAdminHandler(shifts, &stubApprovalService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/admin/shifts", `{"user_id":"w2","date":"2024-03-04","shift_type":"3"}`), rec)

	if err := handler.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAdminHandler_Assign_MissingWorker(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubShiftService{}, &stubApprovalService{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/admin/shifts", `{"date":"2024-03-04","shift_type":"3"}`), httptest.NewRecorder())

	var ve *domain.ValidationError
	if err := handler.Assign(c); !errors.As(err, &ve) || ve.Field != "user_id" {
		t.Fatalf("expected ValidationError on user_id, got %v", err)
	}
}

func TestAdminHandler_Hours(t *testing.T) {
	e := newTestEcho()
	approvals := &stubApprovalService{
		hours: []domain.WorkerHours{
			{User: domain.User{ID: "w2", Name: "Jovan"}, ShiftCount: 3, Hours: 24},
			{User: domain.User{ID: "w1", Name: "Marko"}, ShiftCount: 0, Hours: 0},
		},
	}
	handler := NewAdminHandler(&stubShiftService{}, approvals)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/hours", nil), rec)

	if err := handler.Hours(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp hoursResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Rows) != 2 || resp.Rows[0].Hours != 24 || resp.Rows[0].User.Name != "Jovan" {
		t.Fatalf("unexpected rows: %+v", resp.Rows)
	}
}

func TestAdminHandler_Dashboard_RemoteError(t *testing.T) {
	e := newTestEcho()
	approvals := &stubApprovalService{
		dashboardFn: func(ctx context.Context) (*ports.Dashboard, error) {
			return nil, domain.Remote("list shifts", errors.New("server selection timeout"))
		},
	}
	handler := NewAdminHandler(&stubShiftService{}, approvals)

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil), httptest.NewRecorder())
	err := handler.Dashboard(c)
	if !errors.Is(err, domain.ErrRemote) || err.Error() != "server selection timeout" {
		t.Fatalf("expected verbatim RemoteError, got %v", err)
	}
}
