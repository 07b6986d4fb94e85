package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

// CattleService implements the cattle registry over the key-value store.
type CattleService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewCattleService(store ports.Store, log zerolog.Logger) *CattleService {
	return &CattleService{store: store, log: log}
}

func (s *CattleService) List(ctx context.Context, userID string) ([]domain.Cattle, error) {
	values, err := s.store.GetByPrefix(ctx, domain.CattlePrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list cattle: %w", err)
	}

	cattle := make([]domain.Cattle, 0, len(values))
	for _, raw := range values {
		var c domain.Cattle
		if err := json.Unmarshal(raw, &c); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("skipping undecodable cattle record")
			continue
		}
		cattle = append(cattle, c)
	}
	return cattle, nil
}

func (s *CattleService) Create(ctx context.Context, userID string, in ports.CreateCattleInput) (*domain.Cattle, error) {
	if in.Name == "" || in.Breed == "" {
		return nil, domain.ErrCattleFieldsMissing
	}

	muzzleID := in.MuzzleID
	if muzzleID == "" {
		muzzleID = generateMuzzleID()
	}

	now := time.Now().UTC()
	cattle := &domain.Cattle{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Breed:       in.Breed,
		Age:         in.Age,
		Gender:      in.Gender,
		MuzzleID:    muzzleID,
		HealthScore: domain.DefaultHealthScore,
		LastCheckup: now,
		CreatedAt:   now,
	}

	if err := s.store.Set(ctx, domain.CattleKey(userID, cattle.ID), cattle); err != nil {
		return nil, fmt.Errorf("create cattle: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("cattle_id", cattle.ID).Str("breed", cattle.Breed).Msg("cattle registered")
	return cattle, nil
}

func (s *CattleService) Update(ctx context.Context, userID, cattleID string, in ports.UpdateCattleInput) (*domain.Cattle, error) {
	key := domain.CattleKey(userID, cattleID)

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrCattleNotFound
		}
		return nil, fmt.Errorf("update cattle: %w", err)
	}

	var cattle domain.Cattle
	if err := json.Unmarshal(raw, &cattle); err != nil {
		return nil, fmt.Errorf("update cattle: decode %s: %w", cattleID, err)
	}

	if in.Name != nil {
		cattle.Name = *in.Name
	}
	if in.Breed != nil {
		cattle.Breed = *in.Breed
	}
	if in.Age != nil {
		cattle.Age = *in.Age
	}
	if in.Gender != nil {
		cattle.Gender = *in.Gender
	}
	if in.MuzzleID != nil {
		cattle.MuzzleID = *in.MuzzleID
	}
	if in.HealthScore != nil {
		cattle.HealthScore = *in.HealthScore
	}
	cattle.UpdatedAt = time.Now().UTC()

	if err := s.store.Set(ctx, key, &cattle); err != nil {
		return nil, fmt.Errorf("update cattle: %w", err)
	}
	return &cattle, nil
}

// Delete removes the animal. Unknown ids succeed: deletion is idempotent.
func (s *CattleService) Delete(ctx context.Context, userID, cattleID string) error {
	if err := s.store.Del(ctx, domain.CattleKey(userID, cattleID)); err != nil {
		return fmt.Errorf("delete cattle: %w", err)
	}
	return nil
}

// generateMuzzleID returns a placeholder muzzle biometric id of the form
// MZ-XXXXXXXXXX until a real nose-print capture assigns one.
func generateMuzzleID() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("MZ-%010X", time.Now().UnixNano()&0xFFFFFFFFFF)
	}
	return fmt.Sprintf("MZ-%X", b)
}
