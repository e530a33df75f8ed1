package services

import (
	"errors"
	"strings"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNameRequired = errors.New("recipe name is required")
	ErrInvalidKind        = errors.New("invalid recipe kind")
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrInvalidServings    = errors.New("base servings must be positive")
	ErrStepNotFound       = errors.New("preparation step not found")
)

type RecipeInput struct {
	Name            string
	Kind            string
	Description     string
	PrepTimeMinutes *int
	Difficulty      string
	ChefNotes       string
	BaseServings    int
	Favorite        bool
}

type RecipeService struct {
	recipes *db.RecipeRepository
}

func NewRecipeService(recipes *db.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

func normalizeRecipeInput(input RecipeInput) (RecipeInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, ErrRecipeNameRequired
	}
	if input.Kind == "" {
		input.Kind = models.KindPlat
	}
	if !models.IsValidKind(input.Kind) {
		return input, ErrInvalidKind
	}
	if input.Difficulty == "" {
		input.Difficulty = models.DifficultyMoyen
	}
	if !models.IsValidDifficulty(input.Difficulty) {
		return input, ErrInvalidDifficulty
	}
	if input.BaseServings == 0 {
		input.BaseServings = models.DefaultBaseServings
	}
	if input.BaseServings < 0 {
		return input, ErrInvalidServings
	}
	return input, nil
}

func (service *RecipeService) List() ([]db.RecipeSummary, error) {
	return service.recipes.ListSummaries()
}

func (service *RecipeService) Search(term string) ([]db.RecipeSummary, error) {
	return service.recipes.SearchSummaries(strings.TrimSpace(term))
}

func (service *RecipeService) Favorites() ([]db.RecipeSummary, error) {
	return service.recipes.ListFavoriteSummaries()
}

// Fetch loads a recipe with its ingredient associations, ordered steps and
// media attachments.
func (service *RecipeService) Fetch(recipeID uint) (models.Recipe, error) {
	recipe, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, ErrRecipeNotFound
	}

	if recipe.Ingredients, err = service.recipes.ListIngredients(recipeID); err != nil {
		return models.Recipe{}, err
	}
	if recipe.Steps, err = service.recipes.ListSteps(recipeID); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (service *RecipeService) Create(input RecipeInput) (models.Recipe, error) {
	input, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe := models.Recipe{
		Name:            input.Name,
		Kind:            input.Kind,
		Description:     input.Description,
		PrepTimeMinutes: input.PrepTimeMinutes,
		Difficulty:      input.Difficulty,
		ChefNotes:       input.ChefNotes,
		BaseServings:    input.BaseServings,
	}
	if err := service.recipes.Create(&recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (service *RecipeService) Update(recipeID uint, input RecipeInput) (models.Recipe, error) {
	input, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, ErrRecipeNotFound
	}

	recipe.Name = input.Name
	recipe.Kind = input.Kind
	recipe.Description = input.Description
	recipe.PrepTimeMinutes = input.PrepTimeMinutes
	recipe.Difficulty = input.Difficulty
	recipe.ChefNotes = input.ChefNotes
	recipe.BaseServings = input.BaseServings
	recipe.Favorite = input.Favorite
	if err := service.recipes.Save(&recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (service *RecipeService) ToggleFavorite(recipeID uint) error {
	_, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecipeNotFound
	}
	return service.recipes.ToggleFavorite(recipeID)
}

func (service *RecipeService) Delete(recipeID uint) error {
	return service.recipes.Delete(recipeID)
}

// Duplicate copies the recipe with its associations and steps under a new
// name. Either the whole copy lands or none of it does.
func (service *RecipeService) Duplicate(recipeID uint, newName string) (uint, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return 0, ErrRecipeNameRequired
	}
	newID, err := service.recipes.Duplicate(recipeID, newName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRecipeNotFound
		}
		return 0, err
	}
	return newID, nil
}

func (service *RecipeService) AddIngredient(recipeID uint, ingredientID uint, quantity float64, unit string) error {
	_, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return err
	}
	if !found {
		return ErrRecipeNotFound
	}
	association := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         unit,
	}
	return service.recipes.UpsertIngredient(&association)
}

func (service *RecipeService) RemoveIngredient(recipeID uint, ingredientID uint) error {
	return service.recipes.RemoveIngredient(recipeID, ingredientID)
}

func (service *RecipeService) ClearIngredients(recipeID uint) error {
	return service.recipes.ClearIngredients(recipeID)
}

func (service *RecipeService) AddStep(recipeID uint, position int, description string, durationMinutes *int) (models.PreparationStep, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.PreparationStep{}, errors.New("step description is required")
	}
	_, found, err := service.recipes.FindByID(recipeID)
	if err != nil {
		return models.PreparationStep{}, err
	}
	if !found {
		return models.PreparationStep{}, ErrRecipeNotFound
	}

	step := models.PreparationStep{
		RecipeID:        recipeID,
		Position:        position,
		Description:     description,
		DurationMinutes: durationMinutes,
	}
	if err := service.recipes.AddStep(&step); err != nil {
		return models.PreparationStep{}, err
	}
	return step, nil
}

func (service *RecipeService) RemoveStep(stepID uint) error {
	return service.recipes.RemoveStep(stepID)
}

func (service *RecipeService) ClearSteps(recipeID uint) error {
	return service.recipes.ClearSteps(recipeID)
}
