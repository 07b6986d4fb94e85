package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

// AlertService manages per-user health alerts.
type AlertService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewAlertService(store ports.Store, log zerolog.Logger) *AlertService {
	return &AlertService{store: store, log: log}
}

func (s *AlertService) List(ctx context.Context, userID string) ([]domain.Alert, error) {
	values, err := s.store.GetByPrefix(ctx, domain.AlertPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	alerts := make([]domain.Alert, 0, len(values))
	for _, raw := range values {
		var a domain.Alert
		if err := json.Unmarshal(raw, &a); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("skipping undecodable alert record")
			continue
		}
		alerts = append(alerts, a)
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	return alerts, nil
}

func (s *AlertService) Create(ctx context.Context, userID string, in ports.CreateAlertInput) (*domain.Alert, error) {
	alert := &domain.Alert{
		ID:        uuid.NewString(),
		UserID:    userID,
		CattleID:  in.CattleID,
		Severity:  in.Severity,
		Message:   in.Message,
		Type:      in.Type,
		Timestamp: time.Now().UTC(),
		Read:      false,
	}

	if err := s.store.Set(ctx, domain.AlertKey(userID, alert.ID), alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	return alert, nil
}

func (s *AlertService) MarkRead(ctx context.Context, userID, alertID string) (*domain.Alert, error) {
	key := domain.AlertKey(userID, alertID)

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("mark alert read: %w", err)
	}

	var alert domain.Alert
	if err := json.Unmarshal(raw, &alert); err != nil {
		return nil, fmt.Errorf("mark alert read: decode %s: %w", alertID, err)
	}

	alert.Read = true
	if err := s.store.Set(ctx, key, &alert); err != nil {
		return nil, fmt.Errorf("mark alert read: %w", err)
	}
	return &alert, nil
}
