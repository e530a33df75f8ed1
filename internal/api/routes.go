package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	menus := api.Group("/menus")
	menus.Get("", handler.GetMenusByPeriod)
	menus.Get("/week", handler.GetCurrentWeek)
	menus.Get("/month", handler.GetCurrentMonth)
	menus.Get("/shopping-list", handler.GetShoppingList)
	menus.Get("/suggest", handler.SuggestRecipe)
	menus.Get("/:date", handler.GetMenuByDate)
	menus.Post("", handler.SetMenu)
	menus.Patch("/:date/validate", handler.ValidateMenu)
	menus.Delete("/:date", handler.DeleteMenu)

	recipes := api.Group("/recipes")
	recipes.Get("", handler.GetRecipes)
	recipes.Get("/search", handler.SearchRecipes)
	recipes.Get("/favorites", handler.GetFavoriteRecipes)
	recipes.Get("/:id", handler.GetRecipe)
	recipes.Post("", handler.CreateRecipe)
	recipes.Put("/:id", handler.UpdateRecipe)
	recipes.Patch("/:id/favorite", handler.ToggleFavorite)
	recipes.Delete("/:id", handler.DeleteRecipe)
	recipes.Post("/:id/duplicate", handler.DuplicateRecipe)
	recipes.Post("/:id/ingredients", handler.AddRecipeIngredient)
	recipes.Delete("/:id/ingredients/:ingredientId", handler.RemoveRecipeIngredient)
	recipes.Delete("/:id/ingredients", handler.ClearRecipeIngredients)
	recipes.Post("/:id/steps", handler.AddRecipeStep)
	recipes.Delete("/:id/steps/:stepId", handler.RemoveRecipeStep)
	recipes.Delete("/:id/steps", handler.ClearRecipeSteps)

	ingredients := api.Group("/ingredients")
	ingredients.Get("", handler.GetIngredients)
	ingredients.Get("/search", handler.SearchIngredients)
	ingredients.Get("/category/:categoryId", handler.GetIngredientsByCategory)
	ingredients.Get("/:id", handler.GetIngredient)
	ingredients.Post("", handler.CreateIngredient)
	ingredients.Put("/:id", handler.UpdateIngredient)
	ingredients.Delete("/:id", handler.DeleteIngredient)

	categories := api.Group("/categories")
	categories.Get("", handler.GetCategories)
	categories.Post("", handler.CreateCategory)
	categories.Put("/:id", handler.RenameCategory)
	categories.Delete("/:id", handler.DeleteCategory)

	media := api.Group("/media")
	media.Get("/recipe/:recipeId", handler.GetMediaByRecipe)
	media.Post("", handler.UploadMedia)
	media.Patch("/:id", handler.UpdateMediaDescription)
	media.Patch("/:id/principal", handler.SetPrincipalMedia)
	media.Delete("/:id", handler.DeleteMedia)
}
