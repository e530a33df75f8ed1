package models

import "time"

const (
	KindPlat    = "Plat"
	KindDessert = "Dessert"
)

const (
	DifficultyFacile    = "Facile"
	DifficultyMoyen     = "Moyen"
	DifficultyDifficile = "Difficile"
)

const DefaultBaseServings = 4

type Recipe struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null;index" json:"name"`
	Kind            string `gorm:"not null;default:Plat;index" json:"kind"`
	Description     string `json:"description"`
	PrepTimeMinutes *int   `json:"prep_time_minutes"`
	Difficulty      string `gorm:"not null;default:Moyen" json:"difficulty"`
	ChefNotes       string `json:"chef_notes"`
	BaseServings    int    `gorm:"not null;default:4" json:"base_servings"`
	Favorite        bool   `gorm:"not null;default:false;index" json:"favorite"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Ingredients []RecipeIngredient `gorm:"-" json:"ingredients,omitempty"`
	Steps       []PreparationStep  `gorm:"-" json:"steps,omitempty"`
	Media       []Media            `gorm:"-" json:"media,omitempty"`
}

// RecipeIngredient ties a recipe to an ingredient with the quantity needed
// for the recipe's base serving count, in the unit the recipe measures with
// (which may differ from the ingredient's base unit).
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;uniqueIndex:uidx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;uniqueIndex:uidx_recipe_ingredient" json:"ingredient_id"`
	Quantity     float64 `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit         string  `json:"unit"`

	// Populated by joined selects only, never written back.
	Name         string `gorm:"->;-:migration" json:"name,omitempty"`
	BaseUnit     string `gorm:"->;-:migration" json:"base_unit,omitempty"`
	CategoryName string `gorm:"->;-:migration" json:"category,omitempty"`
}

type PreparationStep struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	RecipeID        uint   `gorm:"not null;index:idx_recipe_position" json:"recipe_id"`
	Position        int    `gorm:"not null;index:idx_recipe_position" json:"position"`
	Description     string `gorm:"not null" json:"description"`
	DurationMinutes *int   `json:"duration_minutes"`
}

func IsValidKind(kind string) bool {
	return kind == KindPlat || kind == KindDessert
}

func IsValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyFacile, DifficultyMoyen, DifficultyDifficile:
		return true
	default:
		return false
	}
}
