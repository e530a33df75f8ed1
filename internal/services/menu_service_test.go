package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ggrange/cuistot/internal/models"
)

type fakeMenuRepository struct {
	entries map[string]models.MenuEntry
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{entries: make(map[string]models.MenuEntry)}
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func (fake *fakeMenuRepository) ListByPeriod(start time.Time, end time.Time) ([]models.MenuEntryView, error) {
	views := make([]models.MenuEntryView, 0)
	for _, entry := range fake.entries {
		if !entry.Date.Before(start) && !entry.Date.After(end) {
			views = append(views, models.MenuEntryView{MenuEntry: entry})
		}
	}
	return views, nil
}

func (fake *fakeMenuRepository) FindByDate(date time.Time) (models.MenuEntryView, bool, error) {
	entry, found := fake.entries[dateKey(date)]
	if !found {
		return models.MenuEntryView{}, false, nil
	}
	return models.MenuEntryView{MenuEntry: entry}, true, nil
}

func (fake *fakeMenuRepository) Upsert(entry *models.MenuEntry) error {
	fake.entries[dateKey(entry.Date)] = *entry
	return nil
}

func (fake *fakeMenuRepository) Validate(date time.Time) (int64, error) {
	entry, found := fake.entries[dateKey(date)]
	if !found {
		return 0, nil
	}
	entry.Validated = true
	fake.entries[dateKey(date)] = entry
	return 1, nil
}

func (fake *fakeMenuRepository) DeleteByDate(date time.Time) error {
	delete(fake.entries, dateKey(date))
	return nil
}

type fakeRecipeChecker struct {
	known map[uint]models.Recipe
}

func (fake fakeRecipeChecker) FindByID(recipeID uint) (models.Recipe, bool, error) {
	recipe, found := fake.known[recipeID]
	return recipe, found, nil
}

func newMenuServiceForTest(repo *fakeMenuRepository, recipeIDs ...uint) *MenuService {
	known := make(map[uint]models.Recipe, len(recipeIDs))
	for _, id := range recipeIDs {
		known[id] = models.Recipe{ID: id}
	}
	return NewMenuService(repo, fakeRecipeChecker{known: known}, time.UTC)
}

func menuTestDate() time.Time {
	return time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
}

func TestSetMenuOverwritesExistingDate(t *testing.T) {
	t.Parallel()

	repo := newFakeMenuRepository()
	service := newMenuServiceForTest(repo, 1, 2)

	firstRecipe := uint(1)
	if _, err := service.SetMenu(menuTestDate(), MenuInput{RecipeID: &firstRecipe, Diners: 4}); err != nil {
		t.Fatalf("first set: %v", err)
	}

	secondRecipe := uint(2)
	view, err := service.SetMenu(menuTestDate(), MenuInput{RecipeID: &secondRecipe, Diners: 6})
	if err != nil {
		t.Fatalf("second set: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected a single entry for the date, got %d", len(repo.entries))
	}
	if view.RecipeID == nil || *view.RecipeID != 2 {
		t.Fatalf("expected recipe 2 after overwrite, got %v", view.RecipeID)
	}
	if view.Diners != 6 {
		t.Fatalf("expected 6 diners, got %d", view.Diners)
	}
}

func TestSetMenuRejectsUnknownRecipe(t *testing.T) {
	t.Parallel()

	service := newMenuServiceForTest(newFakeMenuRepository(), 1)

	ghost := uint(99)
	_, err := service.SetMenu(menuTestDate(), MenuInput{RecipeID: &ghost, Diners: 4})
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestSetMenuDefaultsDiners(t *testing.T) {
	t.Parallel()

	service := newMenuServiceForTest(newFakeMenuRepository())

	view, err := service.SetMenu(menuTestDate(), MenuInput{})
	if err != nil {
		t.Fatalf("set menu: %v", err)
	}
	if view.Diners != models.DefaultDiners {
		t.Fatalf("expected default diners %d, got %d", models.DefaultDiners, view.Diners)
	}
}

func TestSetMenuAllowsPlaceholderWithoutRecipe(t *testing.T) {
	t.Parallel()

	service := newMenuServiceForTest(newFakeMenuRepository())

	view, err := service.SetMenu(menuTestDate(), MenuInput{Notes: "restaurant", Diners: 2})
	if err != nil {
		t.Fatalf("set menu: %v", err)
	}
	if view.RecipeID != nil {
		t.Fatalf("expected no recipe, got %v", *view.RecipeID)
	}
	if view.Notes != "restaurant" {
		t.Fatalf("expected notes kept, got %q", view.Notes)
	}
}

func TestValidateMissingEntry(t *testing.T) {
	t.Parallel()

	service := newMenuServiceForTest(newFakeMenuRepository())

	if err := service.Validate(menuTestDate()); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}

func TestValidateExistingEntry(t *testing.T) {
	t.Parallel()

	repo := newFakeMenuRepository()
	service := newMenuServiceForTest(repo)

	if _, err := service.SetMenu(menuTestDate(), MenuInput{Diners: 4}); err != nil {
		t.Fatalf("set menu: %v", err)
	}
	if err := service.Validate(menuTestDate()); err != nil {
		t.Fatalf("validate: %v", err)
	}

	view, found, err := service.FetchByDate(menuTestDate())
	if err != nil || !found {
		t.Fatalf("fetch: found=%v err=%v", found, err)
	}
	if !view.Validated {
		t.Fatal("expected entry to be validated")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	service := newMenuServiceForTest(newFakeMenuRepository())

	if _, err := service.SetMenu(menuTestDate(), MenuInput{Diners: 4}); err != nil {
		t.Fatalf("set menu: %v", err)
	}
	if err := service.Delete(menuTestDate()); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := service.Delete(menuTestDate()); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestFetchCurrentWeekUsesISOWeek(t *testing.T) {
	t.Parallel()

	repo := newFakeMenuRepository()
	service := newMenuServiceForTest(repo)

	// Sunday of the previous week must not leak into the current one.
	sundayBefore := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{sundayBefore, wednesday} {
		if _, err := service.SetMenu(date, MenuInput{Diners: 4}); err != nil {
			t.Fatalf("set menu %s: %v", date, err)
		}
	}

	entries, err := service.FetchCurrentWeek(time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("fetch current week: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the in-week entry, got %d", len(entries))
	}
}
