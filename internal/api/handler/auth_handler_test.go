package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

type stubAuthService struct {
	signInResult *ports.SignInResult
	signInErr    error
	sessionUser  *domain.User
}

func (s *stubAuthService) SignIn(context.Context, string, string) (*ports.SignInResult, error) {
	return s.signInResult, s.signInErr
}

func (s *stubAuthService) Session(context.Context, string) (*domain.User, error) {
	return s.sessionUser, nil
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignInSuccess(t *testing.T) {
	user := &domain.User{ID: "user_919876543210", Phone: "+919876543210", Name: "New User"}
	h := NewAuthHandler(&stubAuthService{
		signInResult: &ports.SignInResult{Token: "tok123", User: user},
	})

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signin", `{"phone":"+919876543210","otp":"1234"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp struct {
		Session struct {
			AccessToken string `json:"access_token"`
		} `json:"session"`
		User struct {
			ID           string       `json:"id"`
			Phone        string       `json:"phone"`
			UserMetadata *domain.User `json:"user_metadata"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Session.AccessToken != "tok123" {
		t.Errorf("token %q", resp.Session.AccessToken)
	}
	if resp.User.ID != user.ID || resp.User.UserMetadata == nil {
		t.Errorf("user envelope: %+v", resp.User)
	}
}

func TestSignInMalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/v1/auth/signin", `{"phone":`)
	err := h.SignIn(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("got %v, want 400", err)
	}
}

func TestSignInServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signInErr: domain.ErrInvalidOTP})

	c, _ := newTestContext(http.MethodPost, "/v1/auth/signin", `{"phone":"+911234567890","otp":"12"}`)
	if err := h.SignIn(c); err != domain.ErrInvalidOTP {
		t.Errorf("got %v, want ErrInvalidOTP", err)
	}
}

func TestSessionWithoutHeader(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(http.MethodGet, "/v1/auth/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("Session: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"user":null}` {
		t.Errorf("body %s", body)
	}
}

func TestSessionStaleTokenYieldsNullUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{sessionUser: nil})

	c, rec := newTestContext(http.MethodGet, "/v1/auth/session", "")
	c.Request().Header.Set("Authorization", "Bearer stale")
	if err := h.Session(c); err != nil {
		t.Fatalf("Session: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"user":null}` {
		t.Errorf("body %s", body)
	}
}

func TestSessionResolvesUser(t *testing.T) {
	user := &domain.User{ID: "user_1", Phone: "+911", Name: "Ramesh"}
	h := NewAuthHandler(&stubAuthService{sessionUser: user})

	c, rec := newTestContext(http.MethodGet, "/v1/auth/session", "")
	c.Request().Header.Set("Authorization", "Bearer good")
	if err := h.Session(c); err != nil {
		t.Fatalf("Session: %v", err)
	}

	var resp struct {
		User *struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User == nil || resp.User.ID != "user_1" {
		t.Errorf("user %+v", resp.User)
	}
}
