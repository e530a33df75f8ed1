package api

import (
	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.menuService = services.NewMenuService(handler.repositories.Menus, handler.repositories.Recipes, handler.location)
	handler.shoppingService = services.NewShoppingListService(handler.repositories.Menus, handler.location)
	handler.suggestService = services.NewSuggestService(handler.repositories.Menus, handler.repositories.Recipes, handler.location)
	handler.recipeService = services.NewRecipeService(handler.repositories.Recipes)
	handler.ingredientService = services.NewIngredientService(handler.repositories.Ingredients, handler.repositories.Categories)
	handler.categoryService = services.NewCategoryService(handler.repositories.Categories, handler.repositories.Ingredients)
	handler.mediaService = services.NewMediaService(handler.repositories.Media, handler.repositories.Recipes)
	return handler
}
