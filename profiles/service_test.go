package profiles

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/nutrition"
	"github.com/raushankrgupta/nutritrack/storage"
)

func newTestService() (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	svc := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, store
}

func sampleProfile() models.Profile {
	return models.Profile{Name: " Ana ", Age: 30, Gender: "homme", Height: 175, Weight: 70, ActivityLevel: "sédentaire"}
}

func TestSaveComputesTargets(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, "Ana@Example.com", sampleProfile())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Email != "ana@example.com" || saved.Name != "Ana" {
		t.Fatalf("unexpected identity: %+v", saved)
	}
	if saved.Targets.DailyCalories != 1979 || saved.Targets.BMRCalories != 1649 {
		t.Fatalf("unexpected targets: %+v", saved.Targets)
	}
	if saved.Targets.BMI.Value != 22.9 || saved.Targets.BMI.Interpretation != nutrition.Normal {
		t.Fatalf("unexpected BMI: %+v", saved.Targets.BMI)
	}
	if keys := store.Keys(); len(keys) != 1 || keys[0] != "profile:ana@example.com" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	got, err := svc.Get(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Targets != saved.Targets {
		t.Fatalf("stored targets differ: %+v vs %+v", got.Targets, saved.Targets)
	}
}

func TestSaveKeepsCreatedAtAndRecomputes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	if _, err := svc.Save(ctx, "ana@example.com", sampleProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	p := sampleProfile()
	p.ActivityLevel = "très_actif"
	updated, err := svc.Save(ctx, "ana@example.com", p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(first) || !updated.UpdatedAt.Equal(first.Add(48*time.Hour)) {
		t.Fatalf("unexpected timestamps: %v %v", updated.CreatedAt, updated.UpdatedAt)
	}
	if updated.Targets.DailyCalories != 3133 {
		t.Fatalf("expected recomputed daily calories 3133, got %d", updated.Targets.DailyCalories)
	}
}

func TestSaveRejectsInvalidMeasurements(t *testing.T) {
	svc, store := newTestService()
	p := sampleProfile()
	p.Weight = 0

	if _, err := svc.Save(context.Background(), "ana@example.com", p); !errors.Is(err, nutrition.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(store.Keys()) != 0 {
		t.Fatal("invalid profile must not be stored")
	}
}

func TestGetAndDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Get(ctx, "nobody@example.com"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.Save(ctx, "ana@example.com", sampleProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Delete(ctx, "ana@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "ana@example.com"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound after delete, got %v", err)
	}
}
