package planning

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/storage"
)

type stubUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (u *stubUploader) Upload(_ context.Context, body io.Reader, key, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.key, u.contentType = key, contentType
	u.body, _ = io.ReadAll(body)
	return key, nil
}

func (u *stubUploader) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://bucket.example.com/" + key + "?sig=1", nil
}

func newTestService(up Uploader) (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	svc := NewService(store, up, discardLogger())
	svc.newID = func() string { return "fixed-id" }
	return svc, store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSaveAndGet(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	plan, err := svc.Get(ctx, "ana@example.com")
	if err != nil || plan != nil {
		t.Fatalf("expected no plan, got %v %v", plan, err)
	}

	if err := svc.Save(ctx, " Ana@Example.com ", GenerateWeeklyPlan(2000)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if keys := store.Keys(); len(keys) != 1 || keys[0] != "mealplan:ana@example.com" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	plan, err = svc.Get(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(plan[models.Wednesday]) != 3 || plan[models.Wednesday][2].Calories != 840 {
		t.Fatalf("unexpected stored plan: %+v", plan[models.Wednesday])
	}
}

func TestGetTreatsAllEmptyWeekAsAbsent(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	empty := models.MealPlan{}
	for _, d := range models.Week {
		empty[d] = []models.PlannedMeal{}
	}
	if err := svc.Save(ctx, "ana@example.com", empty); err != nil {
		t.Fatalf("save: %v", err)
	}
	plan, err := svc.Get(ctx, "ana@example.com")
	if err != nil || plan != nil {
		t.Fatalf("expected absent plan, got %v %v", plan, err)
	}

	partial := models.MealPlan{models.Monday: []models.PlannedMeal{}}
	if err := svc.Save(ctx, "ana@example.com", partial); err != nil {
		t.Fatalf("save: %v", err)
	}
	if plan, _ := svc.Get(ctx, "ana@example.com"); plan == nil {
		t.Fatal("a plan missing some days is not considered empty")
	}
}

func TestUpdateMealMergesOrAppends(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	if err := svc.Save(ctx, "ana@example.com", GenerateWeeklyPlan(2000)); err != nil {
		t.Fatalf("save: %v", err)
	}

	plan, err := svc.UpdateMeal(ctx, "ana@example.com", models.Monday, models.Lunch, MealPatch{Title: strPtr("Salad"), Calories: intPtr(420)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	lunch := plan[models.Monday][1]
	if lunch.Title != "Salad" || lunch.Calories != 420 || lunch.ID != "monday-lunch" || len(lunch.Ingredients) != 2 {
		t.Fatalf("merge lost fields: %+v", lunch)
	}

	plan, err = svc.UpdateMeal(ctx, "ana@example.com", models.Monday, models.MealType("snack"), MealPatch{Title: strPtr("Apple")})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(plan[models.Monday]) != 4 || plan[models.Monday][3].Type != "snack" {
		t.Fatalf("expected appended snack: %+v", plan[models.Monday])
	}

	stored, _ := svc.Get(ctx, "ana@example.com")
	if len(stored[models.Monday]) != 4 {
		t.Fatalf("update not persisted")
	}
}

func TestUpdateMealWithoutPlan(t *testing.T) {
	svc, _ := newTestService(nil)
	plan, err := svc.UpdateMeal(context.Background(), "new@example.com", models.Friday, models.Dinner, MealPatch{Calories: intPtr(600)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(plan) != 1 || plan[models.Friday][0].Calories != 600 || plan[models.Friday][0].Type != models.Dinner {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestRemoveMealAndClear(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()
	if err := svc.Save(ctx, "ana@example.com", GenerateWeeklyPlan(2000)); err != nil {
		t.Fatalf("save: %v", err)
	}

	plan, err := svc.RemoveMeal(ctx, "ana@example.com", models.Tuesday, models.Breakfast)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	for _, m := range plan[models.Tuesday] {
		if m.Type == models.Breakfast {
			t.Fatal("breakfast should be removed")
		}
	}
	if len(plan[models.Tuesday]) != 2 {
		t.Fatalf("expected 2 meals left, got %d", len(plan[models.Tuesday]))
	}

	if err := svc.Clear(ctx, "ana@example.com"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(store.Keys()) != 0 {
		t.Fatalf("expected store to be empty, got %v", store.Keys())
	}
	if err := svc.Clear(ctx, "ana@example.com"); err != nil {
		t.Fatalf("clearing twice should be fine: %v", err)
	}
}

func TestServicePropagatesStoreErrors(t *testing.T) {
	svc, store := newTestService(nil)
	boom := errors.New("disk full")
	store.WithError(boom)

	if _, err := svc.Get(context.Background(), "ana@example.com"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := svc.Save(context.Background(), "ana@example.com", GenerateWeeklyPlan(0)); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestExport(t *testing.T) {
	up := &stubUploader{}
	svc, _ := newTestService(up)
	ctx := context.Background()

	if _, err := svc.Export(ctx, "ana@example.com"); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}

	if err := svc.Save(ctx, "ana@example.com", GenerateWeeklyPlan(2000)); err != nil {
		t.Fatalf("save: %v", err)
	}
	url, err := svc.Export(ctx, "Ana@example.com")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if up.key != "exports/ana@example.com/fixed-id.pdf" || up.contentType != "application/pdf" {
		t.Fatalf("unexpected upload: %s %s", up.key, up.contentType)
	}
	if !bytes.HasPrefix(up.body, []byte("%PDF")) {
		t.Fatalf("uploaded body is not a PDF")
	}
	if !strings.Contains(url, up.key) {
		t.Fatalf("unexpected url %s", url)
	}
}

func TestExportDisabled(t *testing.T) {
	svc, _ := newTestService(nil)
	if _, err := svc.Export(context.Background(), "ana@example.com"); !errors.Is(err, ErrExportDisabled) {
		t.Fatalf("expected ErrExportDisabled, got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	plan := GenerateWeeklyPlan(1800)
	plan[models.Saturday] = []models.PlannedMeal{}
	plan[models.Sunday][0].Title = "Crêpes au citron"

	var buf bytes.Buffer
	if err := RenderPDF(plan, "ana@example.com", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) || buf.Len() < 500 {
		t.Fatalf("unexpected PDF output (%d bytes)", buf.Len())
	}
}
