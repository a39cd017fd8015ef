package planning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raushankrgupta/nutritrack/credentials"
	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/storage"
)

var (
	ErrPlanNotFound   = errors.New("meal plan not found")
	ErrExportDisabled = errors.New("plan export is not configured")
)

const planKeyPrefix = "mealplan:"

// Uploader stores exported files and returns shareable links.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader, objectKey, contentType string) (string, error)
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}

// MealPatch holds the fields of a meal to overwrite. Nil fields are kept.
type MealPatch struct {
	ID          *string              `json:"id,omitempty"`
	Title       *string              `json:"title,omitempty"`
	Calories    *int                 `json:"calories,omitempty"`
	Ingredients *[]models.Ingredient `json:"ingredients,omitempty"`
}

func (p MealPatch) applyTo(m *models.PlannedMeal) {
	if p.ID != nil {
		m.ID = *p.ID
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Calories != nil {
		m.Calories = *p.Calories
	}
	if p.Ingredients != nil {
		m.Ingredients = *p.Ingredients
	}
}

// Service persists one meal plan per user.
type Service struct {
	store    storage.Store
	uploader Uploader
	logger   *slog.Logger
	newID    func() string
}

// NewService builds the plan service. uploader may be nil, which disables Export.
func NewService(store storage.Store, uploader Uploader, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		uploader: uploader,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

func planKey(email string) string {
	return planKeyPrefix + credentials.NormalizeEmail(email)
}

// Save replaces the stored plan.
func (s *Service) Save(ctx context.Context, email string, plan models.MealPlan) error {
	if plan == nil {
		plan = models.MealPlan{}
	}
	if err := storage.PutJSON(ctx, s.store, planKey(email), plan); err != nil {
		return fmt.Errorf("save meal plan: %w", err)
	}
	return nil
}

// Get returns the stored plan, or nil when there is none or every day is empty.
func (s *Service) Get(ctx context.Context, email string) (models.MealPlan, error) {
	var plan models.MealPlan
	err := storage.GetJSON(ctx, s.store, planKey(email), &plan)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load meal plan: %w", err)
	}
	if plan == nil || plan.Empty() {
		return nil, nil
	}
	return plan, nil
}

func (s *Service) loadOrEmpty(ctx context.Context, email string) (models.MealPlan, error) {
	plan, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = models.MealPlan{}
	}
	return plan, nil
}

// UpdateMeal merges patch into the day's meal of mealType, appending a new meal when absent.
func (s *Service) UpdateMeal(ctx context.Context, email string, day models.Day, mealType models.MealType, patch MealPatch) (models.MealPlan, error) {
	plan, err := s.loadOrEmpty(ctx, email)
	if err != nil {
		return nil, err
	}

	meals := plan[day]
	updated := false
	for i := range meals {
		if meals[i].Type == mealType {
			patch.applyTo(&meals[i])
			updated = true
			break
		}
	}
	if !updated {
		meal := models.PlannedMeal{Type: mealType}
		patch.applyTo(&meal)
		meals = append(meals, meal)
	}
	plan[day] = meals

	if err := s.Save(ctx, email, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveMeal drops every meal of mealType from the day.
func (s *Service) RemoveMeal(ctx context.Context, email string, day models.Day, mealType models.MealType) (models.MealPlan, error) {
	plan, err := s.loadOrEmpty(ctx, email)
	if err != nil {
		return nil, err
	}

	kept := make([]models.PlannedMeal, 0, len(plan[day]))
	for _, m := range plan[day] {
		if m.Type != mealType {
			kept = append(kept, m)
		}
	}
	plan[day] = kept

	if err := s.Save(ctx, email, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Clear deletes the stored plan. Clearing a missing plan is not an error.
func (s *Service) Clear(ctx context.Context, email string) error {
	if err := s.store.Delete(ctx, planKey(email)); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("clear meal plan: %w", err)
	}
	return nil
}

// Export renders the stored plan to PDF, uploads it and returns a presigned link.
func (s *Service) Export(ctx context.Context, email string) (string, error) {
	if s.uploader == nil {
		return "", ErrExportDisabled
	}

	plan, err := s.Get(ctx, email)
	if err != nil {
		return "", err
	}
	if plan == nil {
		return "", ErrPlanNotFound
	}

	var buf bytes.Buffer
	if err := RenderPDF(plan, email, &buf); err != nil {
		return "", fmt.Errorf("render meal plan: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s.pdf", credentials.NormalizeEmail(email), s.newID())
	if _, err := s.uploader.Upload(ctx, &buf, key, "application/pdf"); err != nil {
		return "", err
	}

	url, err := s.uploader.PresignedURL(ctx, key)
	if err != nil {
		return "", err
	}
	s.logger.Info("meal plan exported", "email", email, "key", key)
	return url, nil
}
