package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the caller's profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/profile. Users without a stored profile get a default
// derived from their token identity.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, phone, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), userID, phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// Update handles PUT /v1/profile. Only supplied fields are merged; the id is
// pinned to the token identity.
//
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to merge"
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.Update(c.Request().Context(), userID, ports.UpdateProfileInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}
