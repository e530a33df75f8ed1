package api

import (
	"time"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	location       *time.Location
	uploadDir      string
	maxUploadBytes int64

	repositories      *db.Repositories
	menuService       *services.MenuService
	shoppingService   *services.ShoppingListService
	suggestService    *services.SuggestService
	recipeService     *services.RecipeService
	ingredientService *services.IngredientService
	categoryService   *services.CategoryService
	mediaService      *services.MediaService
}

const defaultMaxUploadBytes = 16 << 20
