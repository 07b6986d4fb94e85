package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/api/metrics"
	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

// ScanHandler handles HTTP requests for diagnostic scans.
type ScanHandler struct {
	service ports.ScanService
}

func NewScanHandler(service ports.ScanService) *ScanHandler {
	return &ScanHandler{service: service}
}

// List handles GET /v1/scans — newest first.
//
// @Summary      List the caller's scans
// @Tags         scans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  scanListResponse
// @Failure      401  {object}  errorResponse
// @Router       /scans [get]
func (h *ScanHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	scans, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scanListResponse{Scans: scans})
}

// Create handles POST /v1/scans. When the body carries no results, the
// configured generator fabricates a mode-shaped payload.
//
// @Summary      Record a diagnostic scan
// @Tags         scans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createScanRequest  true  "Scan details; results optional"
// @Success      200   {object}  scanResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /scans [post]
func (h *ScanHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scan, err := h.service.Create(c.Request().Context(), userID, ports.CreateScanInput{
		CattleID: req.CattleID,
		Mode:     domain.ScanMode(req.Mode),
		Results:  req.Results,
	})
	if err != nil {
		return err
	}

	metrics.ScansCreatedTotal.WithLabelValues(req.Mode).Inc()
	return c.JSON(http.StatusOK, scanResponse{Scan: scan})
}
