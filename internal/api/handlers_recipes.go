package api

import (
	"errors"

	"github.com/ggrange/cuistot/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetRecipes(c *fiber.Ctx) error {
	summaries, err := handler.recipeService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipes")
	}
	return c.JSON(summaries)
}

func (handler *Handler) SearchRecipes(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return apiError(c, fiber.StatusBadRequest, "search term is required")
	}
	summaries, err := handler.recipeService.Search(term)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to search recipes")
	}
	return c.JSON(summaries)
}

func (handler *Handler) GetFavoriteRecipes(c *fiber.Ctx) error {
	summaries, err := handler.recipeService.Favorites()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipes")
	}
	return c.JSON(summaries)
}

func (handler *Handler) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	recipe, err := handler.recipeService.Fetch(recipeID)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusNotFound, "recipe not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}

	if recipe.Media, err = handler.mediaService.ListByRecipe(recipeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch recipe")
	}
	return c.JSON(recipe)
}

type recipePayload struct {
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	Description     string `json:"description"`
	PrepTimeMinutes *int   `json:"prep_time_minutes"`
	Difficulty      string `json:"difficulty"`
	ChefNotes       string `json:"chef_notes"`
	BaseServings    int    `json:"base_servings"`
	Favorite        bool   `json:"favorite"`
}

func (payload recipePayload) toInput() services.RecipeInput {
	return services.RecipeInput{
		Name:            payload.Name,
		Kind:            payload.Kind,
		Description:     payload.Description,
		PrepTimeMinutes: payload.PrepTimeMinutes,
		Difficulty:      payload.Difficulty,
		ChefNotes:       payload.ChefNotes,
		BaseServings:    payload.BaseServings,
		Favorite:        payload.Favorite,
	}
}

func recipeInputAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRecipeNameRequired):
		return apiError(c, fiber.StatusBadRequest, "recipe name is required")
	case errors.Is(err, services.ErrInvalidKind):
		return apiError(c, fiber.StatusBadRequest, "invalid recipe kind")
	case errors.Is(err, services.ErrInvalidDifficulty):
		return apiError(c, fiber.StatusBadRequest, "invalid difficulty")
	case errors.Is(err, services.ErrInvalidServings):
		return apiError(c, fiber.StatusBadRequest, "invalid base servings")
	case errors.Is(err, services.ErrRecipeNotFound):
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save recipe")
	}
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	payload := recipePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	recipe, err := handler.recipeService.Create(payload.toInput())
	if err != nil {
		return recipeInputAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

func (handler *Handler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := recipePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	recipe, err := handler.recipeService.Update(recipeID, payload.toInput())
	if err != nil {
		return recipeInputAPIError(c, err)
	}
	return c.JSON(recipe)
}

func (handler *Handler) ToggleFavorite(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.recipeService.ToggleFavorite(recipeID); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusNotFound, "recipe not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update recipe")
	}
	return c.JSON(fiber.Map{"toggled": true})
}

func (handler *Handler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.recipeService.Delete(recipeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete recipe")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DuplicateRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := struct {
		Name string `json:"name"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	newID, err := handler.recipeService.Duplicate(recipeID, payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeNameRequired):
			return apiError(c, fiber.StatusBadRequest, "recipe name is required")
		case errors.Is(err, services.ErrRecipeNotFound):
			return apiError(c, fiber.StatusNotFound, "recipe not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to duplicate recipe")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": newID})
}

func (handler *Handler) AddRecipeIngredient(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := struct {
		IngredientID uint    `json:"ingredient_id"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.IngredientID == 0 {
		return apiError(c, fiber.StatusBadRequest, "ingredient id is required")
	}
	if payload.Quantity < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid quantity")
	}

	if err := handler.recipeService.AddIngredient(recipeID, payload.IngredientID, payload.Quantity, payload.Unit); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusNotFound, "recipe not found")
		}
		return apiError(c, fiber.StatusUnprocessableEntity, "failed to add ingredient")
	}
	return c.JSON(fiber.Map{"added": true})
}

func (handler *Handler) RemoveRecipeIngredient(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	ingredientID, err := parseIDParam(c.Params("ingredientId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	if err := handler.recipeService.RemoveIngredient(recipeID, ingredientID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove ingredient")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ClearRecipeIngredients(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.recipeService.ClearIngredients(recipeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear ingredients")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddRecipeStep(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := struct {
		Position        int    `json:"position"`
		Description     string `json:"description"`
		DurationMinutes *int   `json:"duration_minutes"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	step, err := handler.recipeService.AddStep(recipeID, payload.Position, payload.Description, payload.DurationMinutes)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusNotFound, "recipe not found")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid step")
	}
	return c.Status(fiber.StatusCreated).JSON(step)
}

func (handler *Handler) RemoveRecipeStep(c *fiber.Ctx) error {
	if _, err := parseIDParam(c.Params("id")); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	stepID, err := parseIDParam(c.Params("stepId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid step id")
	}

	if err := handler.recipeService.RemoveStep(stepID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove step")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ClearRecipeSteps(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.recipeService.ClearSteps(recipeID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear steps")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
