package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/ports"
)

// CattleHandler handles HTTP requests for the cattle registry.
type CattleHandler struct {
	service ports.CattleService
}

func NewCattleHandler(service ports.CattleService) *CattleHandler {
	return &CattleHandler{service: service}
}

// List handles GET /v1/cattle.
//
// @Summary      List the caller's cattle
// @Tags         cattle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cattleListResponse
// @Failure      401  {object}  errorResponse
// @Router       /cattle [get]
func (h *CattleHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cattle, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cattleListResponse{Cattle: cattle})
}

// Create handles POST /v1/cattle.
//
// @Summary      Register a new animal
// @Tags         cattle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCattleRequest  true  "Animal details"
// @Success      200   {object}  cattleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /cattle [post]
func (h *CattleHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCattleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cattle, err := h.service.Create(c.Request().Context(), userID, ports.CreateCattleInput{
		Name:     req.Name,
		Breed:    req.Breed,
		Age:      req.Age,
		Gender:   req.Gender,
		MuzzleID: req.MuzzleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cattleResponse{Cattle: cattle})
}

// Update handles PUT /v1/cattle/:id.
//
// @Summary      Update an animal
// @Tags         cattle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Cattle id"
// @Param        body  body      updateCattleRequest  true  "Fields to merge"
// @Success      200   {object}  cattleResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cattle/{id} [put]
func (h *CattleHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCattleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cattle, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdateCattleInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		MuzzleID:    req.MuzzleID,
		HealthScore: req.HealthScore,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cattleResponse{Cattle: cattle})
}

// Delete handles DELETE /v1/cattle/:id. Deletion is idempotent: unknown ids
// also report success.
//
// @Summary      Delete an animal
// @Tags         cattle
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Cattle id"
// @Success      200  {object}  deleteResponse
// @Failure      401  {object}  errorResponse
// @Router       /cattle/{id} [delete]
func (h *CattleHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: true})
}
