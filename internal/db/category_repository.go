package db

import (
	"errors"

	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) List() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepository) FindByID(categoryID uint) (models.Category, bool, error) {
	var category models.Category
	if err := repo.database.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, false, nil
		}
		return models.Category{}, false, err
	}
	return category, true, nil
}

func (repo *CategoryRepository) FindByName(name string) (models.Category, bool, error) {
	var category models.Category
	if err := repo.database.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, false, nil
		}
		return models.Category{}, false, err
	}
	return category, true, nil
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) Rename(categoryID uint, name string) error {
	return repo.database.Model(&models.Category{}).
		Where("id = ?", categoryID).
		Update("name", name).Error
}

func (repo *CategoryRepository) Delete(categoryID uint) error {
	return repo.database.Delete(&models.Category{}, categoryID).Error
}
