package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/ports"
)

// AlertHandler handles HTTP requests for health alerts.
type AlertHandler struct {
	service ports.AlertService
}

func NewAlertHandler(service ports.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

// List handles GET /v1/alerts — newest first.
//
// @Summary      List the caller's alerts
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  alertListResponse
// @Failure      401  {object}  errorResponse
// @Router       /alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	alerts, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alertListResponse{Alerts: alerts})
}

// Create handles POST /v1/alerts.
//
// @Summary      Create an alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAlertRequest  true  "Alert details"
// @Success      200   {object}  alertResponse
// @Failure      401   {object}  errorResponse
// @Router       /alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	alert, err := h.service.Create(c.Request().Context(), userID, ports.CreateAlertInput{
		CattleID: req.CattleID,
		Severity: req.Severity,
		Message:  req.Message,
		Type:     req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alertResponse{Alert: alert})
}

// MarkRead handles PUT /v1/alerts/:id/read.
//
// @Summary      Mark an alert as read
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Alert id"
// @Success      200  {object}  alertResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /alerts/{id}/read [put]
func (h *AlertHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	alert, err := h.service.MarkRead(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alertResponse{Alert: alert})
}
