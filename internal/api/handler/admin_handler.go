package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/api/metrics"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

// AdminHandler serves the admin dashboard tabs and shift decisions.
type AdminHandler struct {
	shiftService    ports.ShiftService
	approvalService ports.ApprovalService
}

func NewAdminHandler(shiftService ports.ShiftService, approvalService ports.ApprovalService) *AdminHandler {
	return &AdminHandler{shiftService: shiftService, approvalService: approvalService}
}

// Dashboard handles GET /v1/admin/dashboard.
//
// @Summary      Admin dashboard
// @Description  Pending queue, calendar, hours report and worker list in one response.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dashboardResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	d, err := h.approvalService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(d))
}

// Pending handles GET /v1/admin/shifts/pending.
//
// @Summary      Pending shift requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  shiftListResponse
// @Router       /v1/admin/shifts/pending [get]
func (h *AdminHandler) Pending(c echo.Context) error {
	shifts, err := h.approvalService.PendingShifts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shiftListResponse{Shifts: toShiftResponses(shifts)})
}

// Calendar handles GET /v1/admin/calendar.
//
// @Summary      Shift calendar
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  calendarResponse
// @Router       /v1/admin/calendar [get]
func (h *AdminHandler) Calendar(c echo.Context) error {
	days, err := h.approvalService.Calendar(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calendarResponse{Days: toCalendarResponse(days)})
}

// Hours handles GET /v1/admin/hours.
//
// @Summary      Hours per worker
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  hoursResponse
// @Router       /v1/admin/hours [get]
func (h *AdminHandler) Hours(c echo.Context) error {
	rows, err := h.approvalService.Hours(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hoursResponse{Rows: toHoursResponse(rows)})
}

// Workers handles GET /v1/admin/workers.
//
// @Summary      Worker list
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  workersResponse
// @Router       /v1/admin/workers [get]
func (h *AdminHandler) Workers(c echo.Context) error {
	workers, err := h.approvalService.Workers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workersResponse{Workers: toUserResponses(workers)})
}

// Assign handles POST /v1/admin/shifts: creates an approved shift for a worker.
//
// @Summary      Assign a shift
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignShiftRequest  true  "Worker, date and shift type"
// @Success      201   {object}  createShiftResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/admin/shifts [post]
func (h *AdminHandler) Assign(c echo.Context) error {
	var req assignShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ShiftSubmissionsTotal.WithLabelValues("assign", metrics.Outcome(err)).Inc()
		return err
	}

	res, err := h.shiftService.AssignShift(c.Request().Context(), toAssignInput(req))
	metrics.ShiftSubmissionsTotal.WithLabelValues("assign", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createShiftResponse{
		Shift:  toShiftResponse(*res.Created),
		Shifts: toShiftResponses(res.Refreshed),
	})
}

// Approve handles POST /v1/admin/shifts/:id/approve.
//
// @Summary      Approve a shift
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift ID"
// @Success      200  {object}  decisionResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/shifts/{id}/approve [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	return h.decide(c, domain.StatusApproved, h.approvalService.Approve)
}

// Reject handles POST /v1/admin/shifts/:id/reject.
//
// @Summary      Reject a shift
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift ID"
// @Success      200  {object}  decisionResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/shifts/{id}/reject [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	return h.decide(c, domain.StatusRejected, h.approvalService.Reject)
}

type decideFunc func(ctx context.Context, shiftID string) (*domain.Shift, error)

func (h *AdminHandler) decide(c echo.Context, status domain.RequestStatus, fn decideFunc) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "shift id is required")
	}

	shift, err := fn(c.Request().Context(), id)
	metrics.ShiftDecisionsTotal.WithLabelValues(string(status), metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionResponse{Shift: toShiftResponse(*shift)})
}
