package api

import (
	"errors"
	"time"

	"github.com/ggrange/cuistot/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetMenusByPeriod(c *fiber.Ctx) error {
	from, to, err := parsePeriodQuery(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := handler.menuService.FetchByPeriod(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch menus")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetCurrentWeek(c *fiber.Ctx) error {
	entries, err := handler.menuService.FetchCurrentWeek(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch menus")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetCurrentMonth(c *fiber.Ctx) error {
	entries, err := handler.menuService.FetchCurrentMonth(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch menus")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetMenuByDate(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, found, err := handler.menuService.FetchByDate(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch menu")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "menu entry not found")
	}
	return c.JSON(entry)
}

type setMenuPayload struct {
	Date     string `json:"date"`
	RecipeID *uint  `json:"recipe_id"`
	Diners   int    `json:"diners"`
	Notes    string `json:"notes"`
}

func (handler *Handler) SetMenu(c *fiber.Ctx) error {
	payload := setMenuPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	date, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if payload.Diners < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid diner count")
	}

	entry, err := handler.menuService.SetMenu(date, services.MenuInput{
		RecipeID: payload.RecipeID,
		Diners:   payload.Diners,
		Notes:    payload.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusUnprocessableEntity, "recipe not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to set menu")
	}
	return c.JSON(entry)
}

func (handler *Handler) ValidateMenu(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.menuService.Validate(date); err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			return apiError(c, fiber.StatusNotFound, "menu entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to validate menu")
	}
	return c.JSON(fiber.Map{"validated": true})
}

func (handler *Handler) DeleteMenu(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.menuService.Delete(date); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete menu")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetShoppingList(c *fiber.Ctx) error {
	from, to, err := parsePeriodQuery(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	items, err := handler.shoppingService.ComputeForPeriod(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute shopping list")
	}
	return c.JSON(items)
}

func (handler *Handler) SuggestRecipe(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Query("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	recipe, found, err := handler.suggestService.Suggest(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to suggest recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no recipe available")
	}
	return c.JSON(recipe)
}
