package db

import (
	"testing"

	"github.com/ggrange/cuistot/internal/models"
)

func TestMediaSetPrincipalKeepsSingleFlag(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewMediaRepository(database)

	recipe := createTestRecipe(t, database, "Clafoutis")
	first := models.Media{RecipeID: recipe.ID, Kind: models.MediaImage, Path: "uploads/a.jpg"}
	second := models.Media{RecipeID: recipe.ID, Kind: models.MediaImage, Path: "uploads/b.jpg"}
	for _, media := range []*models.Media{&first, &second} {
		if err := repo.Create(media); err != nil {
			t.Fatalf("create media: %v", err)
		}
	}

	if err := repo.SetPrincipal(first.ID, recipe.ID); err != nil {
		t.Fatalf("set first principal: %v", err)
	}
	if err := repo.SetPrincipal(second.ID, recipe.ID); err != nil {
		t.Fatalf("set second principal: %v", err)
	}

	var principalCount int64
	if err := database.Model(&models.Media{}).
		Where("recipe_id = ? AND principal = ?", recipe.ID, true).
		Count(&principalCount).Error; err != nil {
		t.Fatalf("count principals: %v", err)
	}
	if principalCount != 1 {
		t.Fatalf("expected exactly one principal image, got %d", principalCount)
	}

	principal, found, err := repo.FindPrincipalByRecipe(recipe.ID)
	if err != nil {
		t.Fatalf("find principal: %v", err)
	}
	if !found || principal.ID != second.ID {
		t.Fatalf("expected %d as principal, got found=%v id=%d", second.ID, found, principal.ID)
	}
}

func TestMediaFindPrincipalIgnoresVideos(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewMediaRepository(database)

	recipe := createTestRecipe(t, database, "Paella")
	video := models.Media{RecipeID: recipe.ID, Kind: models.MediaVideo, Path: "uploads/v.mp4", Principal: true}
	if err := repo.Create(&video); err != nil {
		t.Fatalf("create video: %v", err)
	}

	_, found, err := repo.FindPrincipalByRecipe(recipe.ID)
	if err != nil {
		t.Fatalf("find principal: %v", err)
	}
	if found {
		t.Fatal("expected no principal image when only a video is flagged")
	}
}

func TestMediaCascadeOnRecipeDelete(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewMediaRepository(database)
	recipes := NewRecipeRepository(database)

	recipe := createTestRecipe(t, database, "Flan")
	photo := models.Media{RecipeID: recipe.ID, Kind: models.MediaImage, Path: "uploads/flan.jpg"}
	if err := repo.Create(&photo); err != nil {
		t.Fatalf("create media: %v", err)
	}

	if err := recipes.Delete(recipe.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	if count := countRows(t, database, "media"); count != 0 {
		t.Fatalf("expected media rows to cascade, got %d", count)
	}
}
