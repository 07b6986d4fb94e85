package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/api/metrics"
	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn handles POST /v1/auth/signin.
//
// @Summary      Sign in with phone and OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Phone number and 4-digit OTP"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignInsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.SignInsTotal.WithLabelValues("rate_limited").Inc()
		case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrInvalidOTP):
			metrics.SignInsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		Session: sessionPayload{AccessToken: result.Token},
		User: sessionUser{
			ID:           result.User.ID,
			Phone:        result.User.Phone,
			UserMetadata: result.User,
		},
	})
}

// Session handles GET /v1/auth/session. The token is optional: callers
// without one (or with a stale one) get {user: null}, never a 401.
//
// @Summary      Get the current session
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer token"
// @Success      200            {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusOK, sessionResponse{User: nil})
	}

	token := authHeader
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		token = parts[1]
	}

	user, err := h.authService.Session(c.Request().Context(), token)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusOK, sessionResponse{User: nil})
	}

	return c.JSON(http.StatusOK, sessionResponse{
		User: &sessionUser{ID: user.ID, Phone: user.Phone, UserMetadata: user},
	})
}
