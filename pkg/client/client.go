// Package client is a small Go client for the livestock API. List and
// profile reads degrade gracefully: when the server is unreachable or
// returns an error, they yield empty collections (or a nil profile) instead
// of failing, so callers can render an empty state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// Cattle is a registered animal as returned by the API.
type Cattle struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	MuzzleID    string    `json:"muzzleId"`
	HealthScore float64   `json:"healthScore"`
	LastCheckup time.Time `json:"lastCheckup"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Scan is a recorded diagnostic scan.
type Scan struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	CattleID  string         `json:"cattleId"`
	Mode      string         `json:"mode"`
	Results   map[string]any `json:"results"`
	Timestamp time.Time      `json:"timestamp"`
}

// Alert is a health alert.
type Alert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CattleID  string    `json:"cattleId,omitempty"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// Profile is the farmer's profile.
type Profile struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// TokenStore persists the session token between calls. MemoryTokenStore is
// the default; supply your own to keep sessions across restarts.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore keeps the token in memory, safe for concurrent use.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithAnonKey sets the public credential sent on requests made before
// sign-in. Optional; unauthenticated endpoints work without it.
func WithAnonKey(key string) Option {
	return func(c *Client) { c.anonKey = key }
}

// Client talks to the livestock API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	anonKey string
}

// New creates a Client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  &MemoryTokenStore{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if c.anonKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// --- Auth ---

// Session bundles the token issued at sign-in.
type Session struct {
	AccessToken string `json:"access_token"`
}

// SessionUser is the identity attached to a session.
type SessionUser struct {
	ID           string   `json:"id"`
	Phone        string   `json:"phone"`
	UserMetadata *Profile `json:"user_metadata"`
}

// SignInResponse is the payload returned by SignIn.
type SignInResponse struct {
	Session Session     `json:"session"`
	User    SessionUser `json:"user"`
}

// SignIn authenticates with phone and OTP and stores the issued token for
// subsequent calls.
func (c *Client) SignIn(ctx context.Context, phone, otp string) (*SignInResponse, error) {
	var resp SignInResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/signin", map[string]string{
		"phone": phone,
		"otp":   otp,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.tokens.SetToken(resp.Session.AccessToken)
	return &resp, nil
}

// Session resolves the current session. The user is nil when no valid token
// is held.
func (c *Client) Session(ctx context.Context) (*SessionUser, error) {
	var resp struct {
		User *SessionUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/auth/session", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// SignOut drops the stored token. Tokens are stateless, so nothing is
// revoked server-side.
func (c *Client) SignOut() {
	c.tokens.Clear()
}

// --- Cattle ---

// CreateCattleRequest registers a new animal.
type CreateCattleRequest struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	MuzzleID string `json:"muzzleId,omitempty"`
}

// UpdateCattleRequest carries the fields to merge. Nil fields are untouched.
type UpdateCattleRequest struct {
	Name        *string  `json:"name,omitempty"`
	Breed       *string  `json:"breed,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	MuzzleID    *string  `json:"muzzleId,omitempty"`
	HealthScore *float64 `json:"healthScore,omitempty"`
}

// ListCattle returns the caller's herd. Degrades to an empty slice on failure.
func (c *Client) ListCattle(ctx context.Context) []Cattle {
	var resp struct {
		Cattle []Cattle `json:"cattle"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/cattle", nil, &resp); err != nil {
		return []Cattle{}
	}
	if resp.Cattle == nil {
		return []Cattle{}
	}
	return resp.Cattle
}

func (c *Client) CreateCattle(ctx context.Context, req CreateCattleRequest) (*Cattle, error) {
	var resp struct {
		Cattle *Cattle `json:"cattle"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/cattle", req, &resp); err != nil {
		return nil, err
	}
	return resp.Cattle, nil
}

func (c *Client) UpdateCattle(ctx context.Context, id string, req UpdateCattleRequest) (*Cattle, error) {
	var resp struct {
		Cattle *Cattle `json:"cattle"`
	}
	if err := c.do(ctx, http.MethodPut, "/v1/cattle/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Cattle, nil
}

// DeleteCattle removes an animal. Deleting an unknown id succeeds.
func (c *Client) DeleteCattle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/cattle/"+id, nil, nil)
}

// --- Scans ---

// CreateScanRequest records a diagnostic scan. Leave Results nil to have the
// server generate mode-shaped mock results.
type CreateScanRequest struct {
	CattleID string         `json:"cattleId"`
	Mode     string         `json:"mode"`
	Results  map[string]any `json:"results,omitempty"`
}

// ListScans returns the caller's scans newest first. Degrades to an empty
// slice on failure.
func (c *Client) ListScans(ctx context.Context) []Scan {
	var resp struct {
		Scans []Scan `json:"scans"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/scans", nil, &resp); err != nil {
		return []Scan{}
	}
	if resp.Scans == nil {
		return []Scan{}
	}
	return resp.Scans
}

func (c *Client) CreateScan(ctx context.Context, req CreateScanRequest) (*Scan, error) {
	var resp struct {
		Scan *Scan `json:"scan"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/scans", req, &resp); err != nil {
		return nil, err
	}
	return resp.Scan, nil
}

// --- Alerts ---

// CreateAlertRequest raises an alert manually.
type CreateAlertRequest struct {
	CattleID string `json:"cattleId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

// ListAlerts returns the caller's alerts newest first. Degrades to an empty
// slice on failure.
func (c *Client) ListAlerts(ctx context.Context) []Alert {
	var resp struct {
		Alerts []Alert `json:"alerts"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/alerts", nil, &resp); err != nil {
		return []Alert{}
	}
	if resp.Alerts == nil {
		return []Alert{}
	}
	return resp.Alerts
}

func (c *Client) CreateAlert(ctx context.Context, req CreateAlertRequest) (*Alert, error) {
	var resp struct {
		Alert *Alert `json:"alert"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/alerts", req, &resp); err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

func (c *Client) MarkAlertRead(ctx context.Context, id string) (*Alert, error) {
	var resp struct {
		Alert *Alert `json:"alert"`
	}
	if err := c.do(ctx, http.MethodPut, "/v1/alerts/"+id+"/read", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

// --- Profile ---

// UpdateProfileRequest carries the profile fields to merge.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// Profile returns the caller's profile. Degrades to nil on failure.
func (c *Client) Profile(ctx context.Context) *Profile {
	var resp struct {
		Profile *Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, &resp); err != nil {
		return nil
	}
	return resp.Profile
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	var resp struct {
		Profile *Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPut, "/v1/profile", req, &resp); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}
