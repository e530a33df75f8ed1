package models

import "time"

const DefaultDiners = 4

// MenuEntry is the planned menu for one calendar date. The date is the unique
// key: setting a menu for a date that already has one overwrites it in place.
// Date carries midnight in the configured location and is compared as a pure
// calendar date, never as a timestamp.
type MenuEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	RecipeID  *uint     `json:"recipe_id"`
	Diners    int       `gorm:"not null;default:4" json:"diners"`
	Notes     string    `json:"notes"`
	Validated bool      `gorm:"not null;default:false" json:"validated"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuEntryView is a MenuEntry joined with the referenced recipe's display
// fields. The recipe fields are empty when the entry has no recipe.
type MenuEntryView struct {
	MenuEntry
	RecipeName        string `json:"recipe_name,omitempty"`
	RecipeDescription string `json:"recipe_description,omitempty"`
	PrepTimeMinutes   *int   `json:"prep_time_minutes,omitempty"`
	Difficulty        string `json:"recipe_difficulty,omitempty"`
	RecipeServings    int    `json:"recipe_servings,omitempty"`
}
