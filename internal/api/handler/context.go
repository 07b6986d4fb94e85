package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the VerifyAuth middleware.
// An empty userId means the middleware never ran for this route; fail closed.
func ctxIdentity(c echo.Context) (userID, phone string, err error) {
	userID, _ = c.Get("userId").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	phone, _ = c.Get("phone").(string)
	return userID, phone, nil
}
