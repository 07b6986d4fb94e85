package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
	"github.com/prana-g/livestock-api/internal/infrastructure/db/memory"
)

func TestCreateAlertStartsUnread(t *testing.T) {
	svc := NewAlertService(memory.New(), zerolog.Nop())

	alert, err := svc.Create(context.Background(), "user_1", ports.CreateAlertInput{
		CattleID: "c1",
		Severity: domain.SeverityWarning,
		Message:  "Low health score (55) detected during spatial scan",
		Type:     "health",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if alert.Read {
		t.Error("new alert marked read")
	}
	if alert.ID == "" || alert.Timestamp.IsZero() {
		t.Errorf("incomplete alert: %+v", alert)
	}
}

func TestMarkReadFlipsFlag(t *testing.T) {
	svc := NewAlertService(memory.New(), zerolog.Nop())
	ctx := context.Background()

	alert, err := svc.Create(ctx, "user_1", ports.CreateAlertInput{Severity: domain.SeverityInfo, Message: "hello"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	read, err := svc.MarkRead(ctx, "user_1", alert.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !read.Read {
		t.Error("read flag not set")
	}

	// The flip must be persisted, not just returned.
	alerts, err := svc.List(ctx, "user_1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(alerts) != 1 || !alerts[0].Read {
		t.Errorf("persisted alert: %+v", alerts)
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := NewAlertService(memory.New(), zerolog.Nop())

	_, err := svc.MarkRead(context.Background(), "user_1", "missing")
	if !errors.Is(err, domain.ErrAlertNotFound) {
		t.Errorf("got %v, want ErrAlertNotFound", err)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc := NewAlertService(memory.New(), zerolog.Nop())
	ctx := context.Background()

	alert, err := svc.Create(ctx, "user_1", ports.CreateAlertInput{Severity: domain.SeverityInfo, Message: "m"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another user cannot reach the alert through its id.
	if _, err := svc.MarkRead(ctx, "user_2", alert.ID); !errors.Is(err, domain.ErrAlertNotFound) {
		t.Errorf("cross-user MarkRead: got %v, want ErrAlertNotFound", err)
	}
}

func TestListAlertsNewestFirst(t *testing.T) {
	store := memory.New()
	svc := NewAlertService(store, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{time.Minute, 3 * time.Minute, 2 * time.Minute} {
		alert := domain.Alert{
			ID:        string(rune('a' + i)),
			UserID:    "user_1",
			Severity:  domain.SeverityInfo,
			Message:   "m",
			Timestamp: base.Add(offset),
		}
		if err := store.Set(ctx, domain.AlertKey("user_1", alert.ID), alert); err != nil {
			t.Fatalf("seed alert: %v", err)
		}
	}

	alerts, err := svc.List(ctx, "user_1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i].Timestamp.After(alerts[i-1].Timestamp) {
			t.Error("alerts not sorted newest first")
		}
	}
}
