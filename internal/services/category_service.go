package services

import (
	"errors"
	"strings"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/models"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryExists       = errors.New("category already exists")
	ErrCategoryInUse        = errors.New("category still has ingredients")
)

type CategoryService struct {
	categories  *db.CategoryRepository
	ingredients *db.IngredientRepository
}

func NewCategoryService(categories *db.CategoryRepository, ingredients *db.IngredientRepository) *CategoryService {
	return &CategoryService{
		categories:  categories,
		ingredients: ingredients,
	}
}

func (service *CategoryService) List() ([]models.Category, error) {
	return service.categories.List()
}

func (service *CategoryService) Create(name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrCategoryNameRequired
	}

	if _, exists, err := service.categories.FindByName(name); err != nil {
		return models.Category{}, err
	} else if exists {
		return models.Category{}, ErrCategoryExists
	}

	category := models.Category{Name: name}
	if err := service.categories.Create(&category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// Rename updates the category row only. Ingredients reference the category by
// id, so no fan-out rewrite is needed.
func (service *CategoryService) Rename(categoryID uint, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrCategoryNameRequired
	}

	_, found, err := service.categories.FindByID(categoryID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCategoryNotFound
	}

	if other, exists, err := service.categories.FindByName(newName); err != nil {
		return err
	} else if exists && other.ID != categoryID {
		return ErrCategoryExists
	}

	return service.categories.Rename(categoryID, newName)
}

// Delete removes the category unless an ingredient still references it.
func (service *CategoryService) Delete(categoryID uint) error {
	_, found, err := service.categories.FindByID(categoryID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCategoryNotFound
	}

	inUse, err := service.ingredients.CountByCategory(categoryID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}

	return service.categories.Delete(categoryID)
}
