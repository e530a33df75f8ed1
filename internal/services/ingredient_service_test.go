package services

import (
	"errors"
	"testing"
)

func TestIngredientCreateStoresCanonicalName(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewIngredientService(repos.Ingredients, repos.Categories)

	ingredient, err := service.Create(IngredientInput{Name: "  Tomates ", Unit: "pièce"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ingredient.Name != "tomate" {
		t.Fatalf("expected canonical name tomate, got %q", ingredient.Name)
	}
}

func TestIngredientCreateRejectsNormalizedDuplicate(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewIngredientService(repos.Ingredients, repos.Categories)

	if _, err := service.Create(IngredientInput{Name: "tomate"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := service.Create(IngredientInput{Name: "Tomates"}); !errors.Is(err, ErrIngredientExists) {
		t.Fatalf("expected ErrIngredientExists for near duplicate, got %v", err)
	}
}

func TestIngredientCreateChecksCategoryReference(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewIngredientService(repos.Ingredients, repos.Categories)

	ghost := uint(999)
	if _, err := service.Create(IngredientInput{Name: "safran", CategoryID: &ghost}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestIngredientUpdateKeepsOwnName(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewIngredientService(repos.Ingredients, repos.Categories)

	ingredient, err := service.Create(IngredientInput{Name: "carotte", Unit: "pièce"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Re-saving under its own (normalized) name must not trip the duplicate
	// check against itself.
	updated, err := service.Update(ingredient.ID, IngredientInput{Name: "Carottes", Unit: "kg"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "carotte" || updated.Unit != "kg" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestIngredientUpdateRejectsCollision(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewIngredientService(repos.Ingredients, repos.Categories)

	if _, err := service.Create(IngredientInput{Name: "poireau"}); err != nil {
		t.Fatalf("create poireau: %v", err)
	}
	carotte, err := service.Create(IngredientInput{Name: "carotte"})
	if err != nil {
		t.Fatalf("create carotte: %v", err)
	}

	if _, err := service.Update(carotte.ID, IngredientInput{Name: "Poireaux"}); !errors.Is(err, ErrIngredientExists) {
		t.Fatalf("expected ErrIngredientExists, got %v", err)
	}
}

func TestCategoryDeleteRejectedWhileInUse(t *testing.T) {
	repos := newServiceTestRepositories(t)
	ingredientService := NewIngredientService(repos.Ingredients, repos.Categories)
	categoryService := NewCategoryService(repos.Categories, repos.Ingredients)

	category, err := categoryService.Create("Exotiques")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	mangue, err := ingredientService.Create(IngredientInput{Name: "mangue", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}

	if err := categoryService.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	if err := ingredientService.Delete(mangue.ID); err != nil {
		t.Fatalf("delete ingredient: %v", err)
	}
	if err := categoryService.Delete(category.ID); err != nil {
		t.Fatalf("expected delete to pass once empty, got %v", err)
	}
}

func TestCategoryRenameValidation(t *testing.T) {
	repos := newServiceTestRepositories(t)
	service := NewCategoryService(repos.Categories, repos.Ingredients)

	if err := service.Rename(999, "Nouveau"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	category, err := service.Create("Surgelés")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := service.Rename(category.ID, "  "); !errors.Is(err, ErrCategoryNameRequired) {
		t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
	}
	if err := service.Rename(category.ID, "Viandes"); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists against seeded category, got %v", err)
	}
	if err := service.Rename(category.ID, "Surgelés"); err != nil {
		t.Fatalf("rename to own name should pass, got %v", err)
	}
}
