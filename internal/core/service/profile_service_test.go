package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/ports"
	"github.com/prana-g/livestock-api/internal/infrastructure/db/memory"
)

func TestGetProfileDefaultsWhenAbsent(t *testing.T) {
	svc := NewProfileService(memory.New(), zerolog.Nop())

	profile, err := svc.Get(context.Background(), "user_1", "+911234567890")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.ID != "user_1" || profile.Phone != "+911234567890" {
		t.Errorf("default profile: %+v", profile)
	}
	if profile.Name != "User" {
		t.Errorf("default name %q", profile.Name)
	}
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	svc := NewProfileService(memory.New(), zerolog.Nop())
	ctx := context.Background()

	name := "Ramesh"
	location := "Gujarat"
	updated, err := svc.Update(ctx, "user_1", ports.UpdateProfileInput{
		Name:     &name,
		Location: &location,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Ramesh" || updated.Location != "Gujarat" {
		t.Errorf("updated profile: %+v", updated)
	}
	if updated.ID != "user_1" {
		t.Errorf("id %q, want pinned to user_1", updated.ID)
	}

	got, err := svc.Get(ctx, "user_1", "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ramesh" || got.Location != "Gujarat" {
		t.Errorf("persisted profile: %+v", got)
	}
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	svc := NewProfileService(memory.New(), zerolog.Nop())
	ctx := context.Background()

	name := "Ramesh"
	location := "Gujarat"
	if _, err := svc.Update(ctx, "user_1", ports.UpdateProfileInput{Name: &name, Location: &location}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	newLocation := "Punjab"
	updated, err := svc.Update(ctx, "user_1", ports.UpdateProfileInput{Location: &newLocation})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Ramesh" {
		t.Errorf("name clobbered: %q", updated.Name)
	}
	if updated.Location != "Punjab" {
		t.Errorf("location %q", updated.Location)
	}
}
