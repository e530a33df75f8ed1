package db

import (
	"errors"

	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

// RecipeSummary is the list-view row: the recipe plus a few aggregates the
// detail fetch would be too heavy for.
type RecipeSummary struct {
	models.Recipe
	IngredientCount int    `gorm:"column:ingredient_count" json:"ingredient_count"`
	IngredientNames string `gorm:"column:ingredient_names" json:"ingredient_names"`
	PrincipalPhoto  string `gorm:"column:principal_photo" json:"principal_photo,omitempty"`
}

const recipeSummarySelect = `recipes.*,
	COUNT(DISTINCT recipe_ingredients.id) AS ingredient_count,
	COALESCE(GROUP_CONCAT(DISTINCT ingredients.name), '') AS ingredient_names,
	COALESCE(MAX(media.path), '') AS principal_photo`

func (repo *RecipeRepository) summaryQuery() *gorm.DB {
	return repo.database.Model(&models.Recipe{}).
		Select(recipeSummarySelect).
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("LEFT JOIN media ON media.recipe_id = recipes.id AND media.principal = ? AND media.kind = ?", true, models.MediaImage).
		Group("recipes.id")
}

func (repo *RecipeRepository) ListSummaries() ([]RecipeSummary, error) {
	summaries := make([]RecipeSummary, 0)
	if err := repo.summaryQuery().
		Order("recipes.created_at DESC").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (repo *RecipeRepository) SearchSummaries(term string) ([]RecipeSummary, error) {
	pattern := "%" + term + "%"
	summaries := make([]RecipeSummary, 0)
	if err := repo.summaryQuery().
		Where("LOWER(recipes.name) LIKE LOWER(?) OR LOWER(recipes.description) LIKE LOWER(?)", pattern, pattern).
		Order("recipes.name ASC").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (repo *RecipeRepository) ListFavoriteSummaries() ([]RecipeSummary, error) {
	summaries := make([]RecipeSummary, 0)
	if err := repo.summaryQuery().
		Where("recipes.favorite = ?", true).
		Order("recipes.name ASC").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (repo *RecipeRepository) ListAll() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) FindByID(recipeID uint) (models.Recipe, bool, error) {
	var recipe models.Recipe
	if err := repo.database.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Recipe{}, false, nil
		}
		return models.Recipe{}, false, err
	}
	return recipe, true, nil
}

func (repo *RecipeRepository) ListIngredients(recipeID uint) ([]models.RecipeIngredient, error) {
	associations := make([]models.RecipeIngredient, 0)
	if err := repo.database.Model(&models.RecipeIngredient{}).
		Select(`recipe_ingredients.*,
			ingredients.name AS name,
			ingredients.unit AS base_unit,
			COALESCE(categories.name, '') AS category_name`).
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("LEFT JOIN categories ON categories.id = ingredients.category_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("category_name ASC, name ASC").
		Scan(&associations).Error; err != nil {
		return nil, err
	}
	return associations, nil
}

func (repo *RecipeRepository) ListSteps(recipeID uint) ([]models.PreparationStep, error) {
	steps := make([]models.PreparationStep, 0)
	if err := repo.database.
		Where("recipe_id = ?", recipeID).
		Order("position ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *RecipeRepository) Save(recipe *models.Recipe) error {
	return repo.database.Save(recipe).Error
}

func (repo *RecipeRepository) ToggleFavorite(recipeID uint) error {
	return repo.database.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("favorite", gorm.Expr("NOT favorite")).Error
}

// Delete removes the recipe. Ingredient associations, steps and media rows go
// with it through the schema's ON DELETE CASCADE; menu entries referencing it
// are detached by ON DELETE SET NULL.
func (repo *RecipeRepository) Delete(recipeID uint) error {
	return repo.database.Delete(&models.Recipe{}, recipeID).Error
}

func (repo *RecipeRepository) UpsertIngredient(association *models.RecipeIngredient) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit"}),
	}).Create(association).Error
}

func (repo *RecipeRepository) RemoveIngredient(recipeID uint, ingredientID uint) error {
	return repo.database.
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&models.RecipeIngredient{}).Error
}

func (repo *RecipeRepository) ClearIngredients(recipeID uint) error {
	return repo.database.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error
}

func (repo *RecipeRepository) AddStep(step *models.PreparationStep) error {
	return repo.database.Create(step).Error
}

func (repo *RecipeRepository) RemoveStep(stepID uint) error {
	return repo.database.Delete(&models.PreparationStep{}, stepID).Error
}

func (repo *RecipeRepository) ClearSteps(recipeID uint) error {
	return repo.database.Where("recipe_id = ?", recipeID).Delete(&models.PreparationStep{}).Error
}

// Duplicate copies the recipe, its ingredient associations and its steps under
// a new name inside one transaction. The favorite flag is not carried over.
func (repo *RecipeRepository) Duplicate(recipeID uint, newName string) (uint, error) {
	var newID uint
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var original models.Recipe
		if err := tx.First(&original, recipeID).Error; err != nil {
			return err
		}

		duplicate := models.Recipe{
			Name:            newName,
			Kind:            original.Kind,
			Description:     original.Description,
			PrepTimeMinutes: original.PrepTimeMinutes,
			Difficulty:      original.Difficulty,
			ChefNotes:       original.ChefNotes,
			BaseServings:    original.BaseServings,
			Favorite:        false,
		}
		if err := tx.Create(&duplicate).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit)
SELECT ?, ingredient_id, quantity, unit FROM recipe_ingredients WHERE recipe_id = ?`,
			duplicate.ID, recipeID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
INSERT INTO preparation_steps (recipe_id, position, description, duration_minutes)
SELECT ?, position, description, duration_minutes FROM preparation_steps WHERE recipe_id = ?`,
			duplicate.ID, recipeID).Error; err != nil {
			return err
		}

		newID = duplicate.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}
