package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ggrange/cuistot/internal/db"
)

func newServiceTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cuistot-services.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db.NewRepositories(database)
}

func TestRecipeCreateAppliesDefaults(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewRecipeService(repos.Recipes)

	recipe, err := service.Create(RecipeInput{Name: "  Gratin dauphinois  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if recipe.Name != "Gratin dauphinois" {
		t.Fatalf("expected trimmed name, got %q", recipe.Name)
	}
	if recipe.Kind != "Plat" {
		t.Fatalf("expected default kind Plat, got %q", recipe.Kind)
	}
	if recipe.Difficulty != "Moyen" {
		t.Fatalf("expected default difficulty Moyen, got %q", recipe.Difficulty)
	}
	if recipe.BaseServings != 4 {
		t.Fatalf("expected default base servings 4, got %d", recipe.BaseServings)
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewRecipeService(repos.Recipes)

	cases := []struct {
		name     string
		input    RecipeInput
		expected error
	}{
		{
			name:     "blank name",
			input:    RecipeInput{Name: "   "},
			expected: ErrRecipeNameRequired,
		},
		{
			name:     "unknown kind",
			input:    RecipeInput{Name: "Soupe", Kind: "Entrée"},
			expected: ErrInvalidKind,
		},
		{
			name:     "unknown difficulty",
			input:    RecipeInput{Name: "Soupe", Difficulty: "Impossible"},
			expected: ErrInvalidDifficulty,
		},
		{
			name:     "negative servings",
			input:    RecipeInput{Name: "Soupe", BaseServings: -2},
			expected: ErrInvalidServings,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Create(testCase.input); !errors.Is(err, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestRecipeFetchLoadsIngredientsAndSteps(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewRecipeService(repos.Recipes)
	ingredientService := NewIngredientService(repos.Ingredients, repos.Categories)

	recipe, err := service.Create(RecipeInput{Name: "Quiche lorraine"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	lardons, err := ingredientService.Create(IngredientInput{Name: "lardons", Unit: "g"})
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	if err := service.AddIngredient(recipe.ID, lardons.ID, 200, "g"); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if _, err := service.AddStep(recipe.ID, 1, "Étaler la pâte", nil); err != nil {
		t.Fatalf("add step: %v", err)
	}

	loaded, err := service.Fetch(recipe.ID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(loaded.Ingredients) != 1 || loaded.Ingredients[0].Quantity != 200 {
		t.Fatalf("expected loaded ingredient association, got %+v", loaded.Ingredients)
	}
	if len(loaded.Steps) != 1 || loaded.Steps[0].Description != "Étaler la pâte" {
		t.Fatalf("expected loaded step, got %+v", loaded.Steps)
	}
}

func TestRecipeDuplicateMissing(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewRecipeService(repos.Recipes)

	if _, err := service.Duplicate(999, "copie"); !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
	if _, err := service.Duplicate(1, "  "); !errors.Is(err, ErrRecipeNameRequired) {
		t.Fatalf("expected ErrRecipeNameRequired for blank name, got %v", err)
	}
}

func TestRecipeAddIngredientToMissingRecipe(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewRecipeService(repos.Recipes)

	if err := service.AddIngredient(42, 1, 100, "g"); !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}
