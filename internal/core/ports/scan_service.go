package ports

import (
	"context"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// CreateScanInput carries one diagnostic event. Results may be nil, in which
// case the gateway's generator produces a mode-shaped placeholder.
type CreateScanInput struct {
	CattleID string
	Mode     domain.ScanMode
	Results  domain.ScanResults
}

// ScanService records diagnostic scans and feeds their scores back into the
// owning cattle record.
type ScanService interface {
	// List returns the user's scans sorted by timestamp, newest first.
	List(ctx context.Context, userID string) ([]domain.Scan, error)
	Create(ctx context.Context, userID string, in CreateScanInput) (*domain.Scan, error)
}

// ResultGenerator produces a plausible, mode-shaped results object when the
// client supplies none. The mock implementation is a placeholder for a real
// inference backend; swapping it must not touch the resource handlers.
type ResultGenerator interface {
	Generate(mode domain.ScanMode) domain.ScanResults
}

// AlertJob asks the alert pipeline to raise a health alert for one animal.
type AlertJob struct {
	UserID   string
	CattleID string
	Mode     domain.ScanMode
	Score    float64
}

// AlertDispatcher hands alert jobs to the async pipeline. Enqueue must not
// block the request path beyond channel buffering.
type AlertDispatcher interface {
	Enqueue(job AlertJob)
}
