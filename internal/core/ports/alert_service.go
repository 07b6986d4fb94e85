package ports

import (
	"context"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// CreateAlertInput carries a client- or system-originated alert.
type CreateAlertInput struct {
	CattleID string
	Severity string
	Message  string
	Type     string
}

// AlertService manages per-user health alerts.
type AlertService interface {
	// List returns the user's alerts sorted by timestamp, newest first.
	List(ctx context.Context, userID string) ([]domain.Alert, error)
	Create(ctx context.Context, userID string, in CreateAlertInput) (*domain.Alert, error)
	// MarkRead flips the read flag. Unknown ids yield domain.ErrAlertNotFound.
	MarkRead(ctx context.Context, userID, alertID string) (*domain.Alert, error)
}

// AlertDeduper suppresses repeated system alerts for the same animal within a
// window (one auto-alert per cattle per day).
type AlertDeduper interface {
	// ShouldAlert atomically checks and claims the window for the given
	// cattle; it returns false when an alert was already raised.
	ShouldAlert(ctx context.Context, userID, cattleID string) (bool, error)
}
