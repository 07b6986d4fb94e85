package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user_919876543210",
		"phone": "+919876543210",
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cattle", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := VerifyAuth(testSecret)(next)(c)
	return rec, c, err
}

func TestVerifyAuthMissingHeader(t *testing.T) {
	_, _, err := invoke(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized || he.Message != "Unauthorized" {
		t.Errorf("got %v, want 401 Unauthorized", err)
	}
}

func TestVerifyAuthInvalidToken(t *testing.T) {
	_, _, err := invoke(t, "Bearer not-a-token")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized || he.Message != "Invalid token" {
		t.Errorf("got %v, want 401 Invalid token", err)
	}
}

func TestVerifyAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))
	_, _, err := invoke(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized || he.Message != "Invalid token" {
		t.Errorf("got %v, want 401 Invalid token", err)
	}
}

func TestVerifyAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Minute))
	_, _, err := invoke(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized || he.Message != "Token expired" {
		t.Errorf("got %v, want 401 Token expired", err)
	}
}

func TestVerifyAuthValidTokenInjectsIdentity(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec, c, err := invoke(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
	if got, _ := c.Get("userId").(string); got != "user_919876543210" {
		t.Errorf("userId %q", got)
	}
	if got, _ := c.Get("phone").(string); got != "+919876543210" {
		t.Errorf("phone %q", got)
	}
}

func TestVerifyAuthAcceptsRawToken(t *testing.T) {
	// Tokens without the Bearer prefix are accepted as well.
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec, _, err := invoke(t, token)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
}
