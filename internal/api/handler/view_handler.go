package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/core/guard"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

// ViewHandler renders the page routes once their view guard lets the
// caller through.
type ViewHandler struct {
	shiftService    ports.ShiftService
	approvalService ports.ApprovalService
}

func NewViewHandler(shiftService ports.ShiftService, approvalService ports.ApprovalService) *ViewHandler {
	return &ViewHandler{shiftService: shiftService, approvalService: approvalService}
}

// Index is only reached if the index guard ever renders; the guard always
// redirects or waits, so fall back to the login view.
func (h *ViewHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, guard.LoginPath)
}

// Login renders the login view for callers without a resolved profile.
func (h *ViewHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "login"})
}

// WorkerDashboard renders the worker's own shift list.
func (h *ViewHandler) WorkerDashboard(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	shifts, err := h.shiftService.ListUserShifts(c.Request().Context(), profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:   "worker_dashboard",
		User:   toUserResponsePtr(profile),
		Shifts: toShiftResponses(shifts),
	})
}

// AdminDashboard renders the admin overview.
func (h *ViewHandler) AdminDashboard(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	d, err := h.approvalService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	dashboard := toDashboardResponse(d)
	return c.JSON(http.StatusOK, viewResponse{
		View:      "admin_dashboard",
		User:      toUserResponsePtr(profile),
		Dashboard: &dashboard,
	})
}
