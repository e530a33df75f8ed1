package api

import (
	"errors"

	"github.com/ggrange/cuistot/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetIngredients(c *fiber.Ctx) error {
	ingredients, err := handler.ingredientService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch ingredients")
	}
	return c.JSON(ingredients)
}

func (handler *Handler) SearchIngredients(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return apiError(c, fiber.StatusBadRequest, "search term is required")
	}
	ingredients, err := handler.ingredientService.Search(term)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to search ingredients")
	}
	return c.JSON(ingredients)
}

func (handler *Handler) GetIngredientsByCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c.Params("categoryId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}
	ingredients, err := handler.ingredientService.ListByCategory(categoryID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch ingredients")
	}
	return c.JSON(ingredients)
}

func (handler *Handler) GetIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	ingredient, err := handler.ingredientService.Fetch(ingredientID)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch ingredient")
	}
	return c.JSON(ingredient)
}

type ingredientPayload struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	CategoryID *uint  `json:"category_id"`
}

func ingredientInputAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrIngredientNameRequired):
		return apiError(c, fiber.StatusBadRequest, "ingredient name is required")
	case errors.Is(err, services.ErrIngredientExists):
		return apiError(c, fiber.StatusConflict, "ingredient already exists")
	case errors.Is(err, services.ErrCategoryNotFound):
		return apiError(c, fiber.StatusUnprocessableEntity, "category not found")
	case errors.Is(err, services.ErrIngredientNotFound):
		return apiError(c, fiber.StatusNotFound, "ingredient not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save ingredient")
	}
}

func (handler *Handler) CreateIngredient(c *fiber.Ctx) error {
	payload := ingredientPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ingredient, err := handler.ingredientService.Create(services.IngredientInput{
		Name:       payload.Name,
		Unit:       payload.Unit,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		return ingredientInputAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

func (handler *Handler) UpdateIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := ingredientPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ingredient, err := handler.ingredientService.Update(ingredientID, services.IngredientInput{
		Name:       payload.Name,
		Unit:       payload.Unit,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		return ingredientInputAPIError(c, err)
	}
	return c.JSON(ingredient)
}

func (handler *Handler) DeleteIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.ingredientService.Delete(ingredientID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete ingredient")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
