package ports

import (
	"context"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// UpdateProfileInput is a shallow merge of profile fields; the id and phone
// are pinned by the service and cannot be changed through updates.
type UpdateProfileInput struct {
	Name     *string
	Location *string
}

// ProfileService reads and updates the authenticated user's profile.
type ProfileService interface {
	// Get returns the stored profile, or a sensible default when the user
	// record has not been written yet.
	Get(ctx context.Context, userID, phone string) (*domain.User, error)
	Update(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
}
