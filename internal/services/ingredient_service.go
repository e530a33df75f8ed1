package services

import (
	"errors"
	"strings"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/models"
)

var (
	ErrIngredientNotFound     = errors.New("ingredient not found")
	ErrIngredientExists       = errors.New("ingredient already exists")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrCategoryNotFound       = errors.New("category not found")
)

type IngredientInput struct {
	Name       string
	Unit       string
	CategoryID *uint
}

type IngredientService struct {
	ingredients *db.IngredientRepository
	categories  *db.CategoryRepository
}

func NewIngredientService(ingredients *db.IngredientRepository, categories *db.CategoryRepository) *IngredientService {
	return &IngredientService{
		ingredients: ingredients,
		categories:  categories,
	}
}

func (service *IngredientService) List() ([]models.Ingredient, error) {
	return service.ingredients.List()
}

func (service *IngredientService) Fetch(ingredientID uint) (models.Ingredient, error) {
	ingredient, found, err := service.ingredients.FindByID(ingredientID)
	if err != nil {
		return models.Ingredient{}, err
	}
	if !found {
		return models.Ingredient{}, ErrIngredientNotFound
	}
	return ingredient, nil
}

func (service *IngredientService) Search(term string) ([]models.Ingredient, error) {
	return service.ingredients.Search(strings.TrimSpace(term))
}

func (service *IngredientService) ListByCategory(categoryID uint) ([]models.Ingredient, error) {
	return service.ingredients.ListByCategory(categoryID)
}

func (service *IngredientService) checkInput(input IngredientInput) (IngredientInput, error) {
	input.Name = NormalizeIngredientName(input.Name)
	if input.Name == "" {
		return input, ErrIngredientNameRequired
	}
	if input.CategoryID != nil {
		_, found, err := service.categories.FindByID(*input.CategoryID)
		if err != nil {
			return input, err
		}
		if !found {
			return input, ErrCategoryNotFound
		}
	}
	return input, nil
}

// Create adds an ingredient under its canonical name. A name that normalizes
// to an existing ingredient is rejected rather than stored as a near
// duplicate.
func (service *IngredientService) Create(input IngredientInput) (models.Ingredient, error) {
	input, err := service.checkInput(input)
	if err != nil {
		return models.Ingredient{}, err
	}

	if _, exists, err := service.ingredients.FindByName(input.Name); err != nil {
		return models.Ingredient{}, err
	} else if exists {
		return models.Ingredient{}, ErrIngredientExists
	}

	ingredient := models.Ingredient{
		Name:       input.Name,
		Unit:       input.Unit,
		CategoryID: input.CategoryID,
	}
	if err := service.ingredients.Create(&ingredient); err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (service *IngredientService) Update(ingredientID uint, input IngredientInput) (models.Ingredient, error) {
	input, err := service.checkInput(input)
	if err != nil {
		return models.Ingredient{}, err
	}

	ingredient, found, err := service.ingredients.FindByID(ingredientID)
	if err != nil {
		return models.Ingredient{}, err
	}
	if !found {
		return models.Ingredient{}, ErrIngredientNotFound
	}

	if other, exists, err := service.ingredients.FindByName(input.Name); err != nil {
		return models.Ingredient{}, err
	} else if exists && other.ID != ingredientID {
		return models.Ingredient{}, ErrIngredientExists
	}

	ingredient.Name = input.Name
	ingredient.Unit = input.Unit
	ingredient.CategoryID = input.CategoryID
	ingredient.CategoryName = ""
	if err := service.ingredients.Save(&ingredient); err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (service *IngredientService) Delete(ingredientID uint) error {
	return service.ingredients.Delete(ingredientID)
}
