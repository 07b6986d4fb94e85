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

// ScanService records diagnostic scans. Recording is a two-step sequence:
// the scan write always lands first, then the owning cattle record is
// refreshed with a second, independent write. There is no rollback — a crash
// between the two leaves the scan persisted and the cattle's health score
// stale, which is the accepted at-least-one-write semantics of the store.
type ScanService struct {
	store          ports.Store
	generator      ports.ResultGenerator
	dispatcher     ports.AlertDispatcher
	alertThreshold float64
	log            zerolog.Logger
}

func NewScanService(store ports.Store, generator ports.ResultGenerator, dispatcher ports.AlertDispatcher, alertThreshold float64, log zerolog.Logger) *ScanService {
	return &ScanService{
		store:          store,
		generator:      generator,
		dispatcher:     dispatcher,
		alertThreshold: alertThreshold,
		log:            log,
	}
}

func (s *ScanService) List(ctx context.Context, userID string) ([]domain.Scan, error) {
	values, err := s.store.GetByPrefix(ctx, domain.ScanPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	scans := make([]domain.Scan, 0, len(values))
	for _, raw := range values {
		var sc domain.Scan
		if err := json.Unmarshal(raw, &sc); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("skipping undecodable scan record")
			continue
		}
		scans = append(scans, sc)
	}

	// The store returns prefix matches in unspecified order; newest first is
	// the listing contract.
	sort.Slice(scans, func(i, j int) bool {
		return scans[i].Timestamp.After(scans[j].Timestamp)
	})
	return scans, nil
}

func (s *ScanService) Create(ctx context.Context, userID string, in ports.CreateScanInput) (*domain.Scan, error) {
	if in.CattleID == "" || in.Mode == "" {
		return nil, domain.ErrScanFieldsMissing
	}

	results := in.Results
	if results == nil {
		results = s.generator.Generate(in.Mode)
	}

	scan := &domain.Scan{
		ID:        uuid.NewString(),
		UserID:    userID,
		CattleID:  in.CattleID,
		Mode:      in.Mode,
		Results:   results,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.Set(ctx, domain.ScanKey(userID, scan.ID), scan); err != nil {
		return nil, fmt.Errorf("create scan: %w", err)
	}

	s.refreshCattle(ctx, userID, scan)

	if score, ok := results.OverallScore(); ok && score < s.alertThreshold && s.dispatcher != nil {
		s.dispatcher.Enqueue(ports.AlertJob{
			UserID:   userID,
			CattleID: in.CattleID,
			Mode:     in.Mode,
			Score:    score,
		})
	}

	s.log.Info().
		Str("user_id", userID).
		Str("cattle_id", in.CattleID).
		Str("mode", string(in.Mode)).
		Msg("scan recorded")
	return scan, nil
}

// refreshCattle applies the scan's score to the owning cattle record. The
// update is best-effort: a scan referencing an unknown animal is still a
// valid scan, so every failure here is swallowed after logging.
func (s *ScanService) refreshCattle(ctx context.Context, userID string, scan *domain.Scan) {
	key := domain.CattleKey(userID, scan.CattleID)

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.log.Debug().Str("cattle_id", scan.CattleID).Msg("scan references unknown cattle, skipping health update")
		} else {
			s.log.Warn().Err(err).Str("cattle_id", scan.CattleID).Msg("cattle lookup failed, skipping health update")
		}
		return
	}

	var cattle domain.Cattle
	if err := json.Unmarshal(raw, &cattle); err != nil {
		s.log.Warn().Err(err).Str("cattle_id", scan.CattleID).Msg("undecodable cattle record, skipping health update")
		return
	}

	if score, ok := scan.Results.OverallScore(); ok {
		cattle.HealthScore = score
	}
	cattle.LastCheckup = scan.Timestamp
	cattle.UpdatedAt = scan.Timestamp

	if err := s.store.Set(ctx, key, &cattle); err != nil {
		s.log.Warn().Err(err).Str("cattle_id", scan.CattleID).Msg("health update write failed")
	}
}
