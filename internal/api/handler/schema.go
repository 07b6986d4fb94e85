package handler

import (
	"github.com/prana-g/livestock-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signInRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp"   validate:"required,len=4"`
}

type sessionPayload struct {
	AccessToken string `json:"access_token"`
}

// sessionUser mirrors the auth-provider user envelope the mobile client was
// built against: identity fields plus the stored profile as metadata.
type sessionUser struct {
	ID           string       `json:"id"`
	Phone        string       `json:"phone"`
	UserMetadata *domain.User `json:"user_metadata,omitempty"`
}

type signInResponse struct {
	Session sessionPayload `json:"session"`
	User    sessionUser    `json:"user"`
}

type sessionResponse struct {
	User *sessionUser `json:"user"`
}

// --- Cattle ---

type createCattleRequest struct {
	Name     string `json:"name"  validate:"required"`
	Breed    string `json:"breed" validate:"required"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	MuzzleID string `json:"muzzleId"`
}

// updateCattleRequest uses pointers so absent fields are distinguishable from
// zero values: only supplied fields are merged into the stored record.
type updateCattleRequest struct {
	Name        *string  `json:"name"`
	Breed       *string  `json:"breed"`
	Age         *int     `json:"age"`
	Gender      *string  `json:"gender"`
	MuzzleID    *string  `json:"muzzleId"`
	HealthScore *float64 `json:"healthScore"`
}

type cattleResponse struct {
	Cattle *domain.Cattle `json:"cattle"`
}

type cattleListResponse struct {
	Cattle []domain.Cattle `json:"cattle"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

// --- Scans ---

type createScanRequest struct {
	CattleID string             `json:"cattleId" validate:"required"`
	Mode     string             `json:"mode"     validate:"required"`
	Results  domain.ScanResults `json:"results"`
}

type scanResponse struct {
	Scan *domain.Scan `json:"scan"`
}

type scanListResponse struct {
	Scans []domain.Scan `json:"scans"`
}

// --- Alerts ---

type createAlertRequest struct {
	CattleID string `json:"cattleId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

type alertResponse struct {
	Alert *domain.Alert `json:"alert"`
}

type alertListResponse struct {
	Alerts []domain.Alert `json:"alerts"`
}

// --- Profile ---

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type profileResponse struct {
	Profile *domain.User `json:"profile"`
}
