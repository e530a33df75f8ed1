package db

import (
	"time"

	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	database *gorm.DB
}

func NewMenuRepository(database *gorm.DB) *MenuRepository {
	return &MenuRepository{database: database}
}

const menuViewSelect = `menu_entries.*,
	recipes.name AS recipe_name,
	recipes.description AS recipe_description,
	recipes.prep_time_minutes AS prep_time_minutes,
	recipes.difficulty AS difficulty,
	recipes.base_servings AS recipe_servings`

func (repo *MenuRepository) ListByPeriod(start time.Time, end time.Time) ([]models.MenuEntryView, error) {
	entries := make([]models.MenuEntryView, 0)
	if err := repo.database.Model(&models.MenuEntry{}).
		Select(menuViewSelect).
		Joins("LEFT JOIN recipes ON recipes.id = menu_entries.recipe_id").
		Where("menu_entries.date >= ? AND menu_entries.date <= ?", start, end).
		Order("menu_entries.date ASC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MenuRepository) FindByDate(date time.Time) (models.MenuEntryView, bool, error) {
	entry := models.MenuEntryView{}
	result := repo.database.Model(&models.MenuEntry{}).
		Select(menuViewSelect).
		Joins("LEFT JOIN recipes ON recipes.id = menu_entries.recipe_id").
		Where("menu_entries.date = ?", date).
		Limit(1).
		Scan(&entry)
	if result.Error != nil {
		return models.MenuEntryView{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MenuEntryView{}, false, nil
	}
	return entry, true, nil
}

// Upsert inserts the entry or, when a row for the date already exists,
// overwrites its recipe, diners and notes in place. The conflict clause keeps
// concurrent writes for the same date from creating a second row.
func (repo *MenuRepository) Upsert(entry *models.MenuEntry) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "diners", "notes"}),
	}).Create(entry).Error
}

// Validate marks the entry for the date validated. The affected-row count is
// returned so the caller can distinguish a missing entry from a no-op.
func (repo *MenuRepository) Validate(date time.Time) (int64, error) {
	result := repo.database.Model(&models.MenuEntry{}).
		Where("date = ?", date).
		Update("validated", true)
	return result.RowsAffected, result.Error
}

func (repo *MenuRepository) DeleteByDate(date time.Time) error {
	return repo.database.Where("date = ?", date).Delete(&models.MenuEntry{}).Error
}

// PlannedRecipeIDs returns the distinct recipe ids referenced by entries in
// [start, end], skipping entries whose recipe was detached.
func (repo *MenuRepository) PlannedRecipeIDs(start time.Time, end time.Time) ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.MenuEntry{}).
		Distinct("recipe_id").
		Where("date >= ? AND date <= ? AND recipe_id IS NOT NULL", start, end).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ShoppingRow is one planned menu joined down to a single ingredient line,
// before any scaling or grouping.
type ShoppingRow struct {
	Date           time.Time `gorm:"column:date"`
	Diners         int       `gorm:"column:diners"`
	BaseServings   int       `gorm:"column:base_servings"`
	IngredientID   uint      `gorm:"column:ingredient_id"`
	IngredientName string    `gorm:"column:ingredient_name"`
	CategoryName   string    `gorm:"column:category_name"`
	Quantity       float64   `gorm:"column:quantity"`
	Unit           string    `gorm:"column:unit"`
}

func (repo *MenuRepository) ShoppingRowsByPeriod(start time.Time, end time.Time) ([]ShoppingRow, error) {
	rows := make([]ShoppingRow, 0)
	if err := repo.database.Raw(`
SELECT menu_entries.date AS date,
       menu_entries.diners AS diners,
       recipes.base_servings AS base_servings,
       ingredients.id AS ingredient_id,
       ingredients.name AS ingredient_name,
       COALESCE(categories.name, '') AS category_name,
       recipe_ingredients.quantity AS quantity,
       recipe_ingredients.unit AS unit
FROM menu_entries
JOIN recipes ON recipes.id = menu_entries.recipe_id
JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id
JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id
LEFT JOIN categories ON categories.id = ingredients.category_id
WHERE menu_entries.date >= ? AND menu_entries.date <= ?
ORDER BY menu_entries.date ASC`, start, end).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
