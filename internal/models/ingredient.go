package models

import "time"

type Ingredient struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null;uniqueIndex" json:"name"`
	Unit       string    `json:"unit"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Populated by joined selects only, never written back.
	CategoryName string `gorm:"->;-:migration" json:"category,omitempty"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCategories seeds the category table on first start, matching the
// buckets the shopping list sorts by.
func DefaultCategories() []string {
	return []string{
		"Viandes",
		"Poissons",
		"Légumes",
		"Fruits",
		"Produits laitiers",
		"Épices",
		"Féculents",
		"Huiles et graisses",
		"Autres",
	}
}

// CommonUnits lists the units of measure the UI offers for quantities.
func CommonUnits() []string {
	return []string{"g", "kg", "ml", "cl", "l", "càc", "càs", "pièce", "tranche", "gousse", "pincée"}
}
