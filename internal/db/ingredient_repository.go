package db

import (
	"errors"

	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
)

type IngredientRepository struct {
	database *gorm.DB
}

func NewIngredientRepository(database *gorm.DB) *IngredientRepository {
	return &IngredientRepository{database: database}
}

const ingredientSelect = `ingredients.*, COALESCE(categories.name, '') AS category_name`

func (repo *IngredientRepository) withCategory() *gorm.DB {
	return repo.database.Model(&models.Ingredient{}).
		Select(ingredientSelect).
		Joins("LEFT JOIN categories ON categories.id = ingredients.category_id")
}

func (repo *IngredientRepository) List() ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := repo.withCategory().
		Order("category_name ASC, ingredients.name ASC").
		Scan(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *IngredientRepository) FindByID(ingredientID uint) (models.Ingredient, bool, error) {
	ingredient := models.Ingredient{}
	result := repo.withCategory().
		Where("ingredients.id = ?", ingredientID).
		Limit(1).
		Scan(&ingredient)
	if result.Error != nil {
		return models.Ingredient{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Ingredient{}, false, nil
	}
	return ingredient, true, nil
}

func (repo *IngredientRepository) Search(term string) ([]models.Ingredient, error) {
	pattern := "%" + term + "%"
	ingredients := make([]models.Ingredient, 0)
	if err := repo.withCategory().
		Where("LOWER(ingredients.name) LIKE LOWER(?)", pattern).
		Order("ingredients.name ASC").
		Scan(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *IngredientRepository) ListByCategory(categoryID uint) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := repo.withCategory().
		Where("ingredients.category_id = ?", categoryID).
		Order("ingredients.name ASC").
		Scan(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *IngredientRepository) FindByName(name string) (models.Ingredient, bool, error) {
	var ingredient models.Ingredient
	if err := repo.database.Where("name = ?", name).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ingredient{}, false, nil
		}
		return models.Ingredient{}, false, err
	}
	return ingredient, true, nil
}

func (repo *IngredientRepository) ListAllOrderedByID() ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := repo.database.Order("id ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return repo.database.Create(ingredient).Error
}

func (repo *IngredientRepository) Save(ingredient *models.Ingredient) error {
	return repo.database.Save(ingredient).Error
}

func (repo *IngredientRepository) Rename(ingredientID uint, name string) error {
	return repo.database.Model(&models.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("name", name).Error
}

func (repo *IngredientRepository) Delete(ingredientID uint) error {
	return repo.database.Delete(&models.Ingredient{}, ingredientID).Error
}

// Merge repoints every recipe association from one ingredient to another and
// removes the loser, in one transaction. Used by the fix-ingredients command
// when normalization collapses two names into one.
func (repo *IngredientRepository) Merge(fromID uint, toID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		// A recipe may already reference both sides; drop the duplicate row
		// first so the unique (recipe_id, ingredient_id) key survives.
		if err := tx.Exec(`
DELETE FROM recipe_ingredients
WHERE ingredient_id = ?
  AND recipe_id IN (SELECT recipe_id FROM recipe_ingredients WHERE ingredient_id = ?)`,
			fromID, toID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.RecipeIngredient{}).
			Where("ingredient_id = ?", fromID).
			Update("ingredient_id", toID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ingredient{}, fromID).Error
	})
}

func (repo *IngredientRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Ingredient{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
