package ports

import (
	"context"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// CreateCattleInput carries the fields accepted when registering an animal.
type CreateCattleInput struct {
	Name     string
	Breed    string
	Age      int
	Gender   string
	MuzzleID string // optional; generated when empty
}

// UpdateCattleInput is a shallow merge: only non-nil fields overwrite the
// stored record.
type UpdateCattleInput struct {
	Name        *string
	Breed       *string
	Age         *int
	Gender      *string
	MuzzleID    *string
	HealthScore *float64
}

// CattleService defines the cattle registry use cases, always scoped to the
// authenticated owner.
type CattleService interface {
	List(ctx context.Context, userID string) ([]domain.Cattle, error)
	Create(ctx context.Context, userID string, in CreateCattleInput) (*domain.Cattle, error)
	Update(ctx context.Context, userID, cattleID string, in UpdateCattleInput) (*domain.Cattle, error)
	// Delete is idempotent: deleting an unknown id succeeds.
	Delete(ctx context.Context, userID, cattleID string) error
}
