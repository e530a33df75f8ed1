package db

import "gorm.io/gorm"

type Repositories struct {
	Recipes     *RecipeRepository
	Ingredients *IngredientRepository
	Categories  *CategoryRepository
	Menus       *MenuRepository
	Media       *MediaRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Recipes:     NewRecipeRepository(database),
		Ingredients: NewIngredientRepository(database),
		Categories:  NewCategoryRepository(database),
		Menus:       NewMenuRepository(database),
		Media:       NewMediaRepository(database),
	}
}
