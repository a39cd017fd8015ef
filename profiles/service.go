// Package profiles stores user body measurements and their derived nutrition targets.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/raushankrgupta/nutritrack/credentials"
	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/nutrition"
	"github.com/raushankrgupta/nutritrack/storage"
)

var ErrProfileNotFound = errors.New("profile not found")

func profileKey(email string) string { return "profile:" + credentials.NormalizeEmail(email) }

type Service struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store storage.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Get loads the profile stored for email.
func (s *Service) Get(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := storage.GetJSON(ctx, s.store, profileKey(email), &p)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

// Save recomputes the targets of p and stores it under email. Invalid
// measurements fail with nutrition.ErrInvalidArgument and nothing is written.
func (s *Service) Save(ctx context.Context, email string, p models.Profile, opts ...nutrition.MacroOption) (*models.Profile, error) {
	targets, err := nutrition.ComputeTargets(p.NutritionProfile(), opts...)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p.Email = credentials.NormalizeEmail(email)
	p.Name = strings.TrimSpace(p.Name)
	p.Targets = targets
	p.CreatedAt = now
	p.UpdatedAt = now

	existing, err := s.Get(ctx, email)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrProfileNotFound):
		return nil, err
	}

	if err := storage.PutJSON(ctx, s.store, profileKey(email), p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.logger.Info("profile saved", "email", p.Email, "daily_calories", targets.DailyCalories)
	return &p, nil
}

// Delete removes the profile. Deleting a missing profile is not an error.
func (s *Service) Delete(ctx context.Context, email string) error {
	if err := s.store.Delete(ctx, profileKey(email)); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
