package api

import (
	"errors"

	"github.com/ggrange/cuistot/internal/services"
	"github.com/gofiber/fiber/v2"
)

type categoryPayload struct {
	Name string `json:"name"`
}

func (handler *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := handler.categoryService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch categories")
	}
	return c.JSON(categories)
}

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	payload := categoryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	category, err := handler.categoryService.Create(payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNameRequired):
			return apiError(c, fiber.StatusBadRequest, "category name is required")
		case errors.Is(err, services.ErrCategoryExists):
			return apiError(c, fiber.StatusConflict, "category already exists")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create category")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (handler *Handler) RenameCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := categoryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.categoryService.Rename(categoryID, payload.Name); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNameRequired):
			return apiError(c, fiber.StatusBadRequest, "category name is required")
		case errors.Is(err, services.ErrCategoryNotFound):
			return apiError(c, fiber.StatusNotFound, "category not found")
		case errors.Is(err, services.ErrCategoryExists):
			return apiError(c, fiber.StatusConflict, "category already exists")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to rename category")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.categoryService.Delete(categoryID); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return apiError(c, fiber.StatusNotFound, "category not found")
		case errors.Is(err, services.ErrCategoryInUse):
			return apiError(c, fiber.StatusConflict, "category still has ingredients")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to delete category")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
