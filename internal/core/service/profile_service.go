package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

// ProfileService reads and updates the authenticated user's profile record.
type ProfileService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewProfileService(store ports.Store, log zerolog.Logger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

// Get returns the stored profile. A user whose profile write never landed
// still gets a usable default derived from their token identity.
func (s *ProfileService) Get(ctx context.Context, userID, phone string) (*domain.User, error) {
	raw, err := s.store.Get(ctx, domain.UserKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return &domain.User{ID: userID, Phone: phone, Name: "User", Location: ""}, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("get profile: decode %s: %w", userID, err)
	}
	return &user, nil
}

// Update shallow-merges the supplied fields into the stored profile. The id
// is pinned to the token identity and can never be changed by a client.
func (s *ProfileService) Update(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	key := domain.UserKey(userID)

	var user domain.User
	raw, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("update profile: decode %s: %w", userID, err)
		}
	case errors.Is(err, domain.ErrKeyNotFound):
		// First write for this user; start from an empty record.
	default:
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	user.ID = userID
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Set(ctx, key, &user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}
