package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/winner-security/shift-scheduler/internal/api/metrics"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
)

// ShiftHandler serves the worker's own shifts.
type ShiftHandler struct {
	shiftService ports.ShiftService
}

func NewShiftHandler(shiftService ports.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// List handles GET /v1/me/shifts.
//
// @Summary      List my shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  shiftListResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/me/shifts [get]
func (h *ShiftHandler) List(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	shifts, err := h.shiftService.ListUserShifts(c.Request().Context(), profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shiftListResponse{Shifts: toShiftResponses(shifts)})
}

// Request handles POST /v1/me/shifts: submits a pending shift request.
//
// @Summary      Request a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      requestShiftRequest  true  "Date and shift type"
// @Success      201   {object}  createShiftResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/me/shifts [post]
func (h *ShiftHandler) Request(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	var req requestShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ShiftSubmissionsTotal.WithLabelValues("request", metrics.Outcome(err)).Inc()
		return err
	}

	res, err := h.shiftService.RequestShift(c.Request().Context(), toRequestInput(req, profile.ID))
	metrics.ShiftSubmissionsTotal.WithLabelValues("request", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createShiftResponse{
		Shift:  toShiftResponse(*res.Created),
		Shifts: toShiftResponses(res.Refreshed),
	})
}
