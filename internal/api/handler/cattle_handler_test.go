package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

type stubCattleService struct {
	cattle  []domain.Cattle
	created *domain.Cattle
	deleted []string
	err     error
}

func (s *stubCattleService) List(context.Context, string) ([]domain.Cattle, error) {
	return s.cattle, s.err
}

func (s *stubCattleService) Create(_ context.Context, userID string, in ports.CreateCattleInput) (*domain.Cattle, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &domain.Cattle{ID: "c1", UserID: userID, Name: in.Name, Breed: in.Breed}
	return s.created, nil
}

func (s *stubCattleService) Update(context.Context, string, string, ports.UpdateCattleInput) (*domain.Cattle, error) {
	return nil, s.err
}

func (s *stubCattleService) Delete(_ context.Context, _ string, cattleID string) error {
	s.deleted = append(s.deleted, cattleID)
	return s.err
}

func authenticate(c echo.Context) {
	c.Set("userId", "user_1")
	c.Set("phone", "+911234567890")
}

func TestListCattleEnvelope(t *testing.T) {
	h := NewCattleHandler(&stubCattleService{cattle: []domain.Cattle{{ID: "c1", UserID: "user_1"}}})

	c, rec := newTestContext(http.MethodGet, "/v1/cattle", "")
	authenticate(c)
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}

	var resp struct {
		Cattle []domain.Cattle `json:"cattle"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Cattle) != 1 || resp.Cattle[0].ID != "c1" {
		t.Errorf("cattle %+v", resp.Cattle)
	}
}

func TestListCattleWithoutIdentity(t *testing.T) {
	h := NewCattleHandler(&stubCattleService{})

	c, _ := newTestContext(http.MethodGet, "/v1/cattle", "")
	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized || he.Message != "Unauthorized" {
		t.Errorf("got %v, want 401 Unauthorized", err)
	}
}

func TestCreateCattleValidation(t *testing.T) {
	h := NewCattleHandler(&stubCattleService{})

	c, _ := newTestContext(http.MethodPost, "/v1/cattle", `{"name":"Gauri"}`)
	authenticate(c)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("missing breed: got %v, want 400", err)
	}
}

func TestCreateCattleSuccess(t *testing.T) {
	svc := &stubCattleService{}
	h := NewCattleHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/cattle", `{"name":"Gauri","breed":"Gir"}`)
	authenticate(c)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
	if svc.created == nil || svc.created.Name != "Gauri" {
		t.Errorf("service input: %+v", svc.created)
	}

	var resp struct {
		Cattle *domain.Cattle `json:"cattle"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Cattle == nil || resp.Cattle.UserID != "user_1" {
		t.Errorf("response cattle: %+v", resp.Cattle)
	}
}

func TestDeleteCattleReportsSuccess(t *testing.T) {
	svc := &stubCattleService{}
	h := NewCattleHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/v1/cattle/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	authenticate(c)
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success flag not set")
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "c1" {
		t.Errorf("deleted ids: %v", svc.deleted)
	}
}

func TestUpdateCattleNotFoundPropagates(t *testing.T) {
	h := NewCattleHandler(&stubCattleService{err: domain.ErrCattleNotFound})

	c, _ := newTestContext(http.MethodPut, "/v1/cattle/missing", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	authenticate(c)
	if err := h.Update(c); err != domain.ErrCattleNotFound {
		t.Errorf("got %v, want ErrCattleNotFound", err)
	}
}
