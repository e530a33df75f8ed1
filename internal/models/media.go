package models

import "time"

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Media is a file attached to a recipe. At most one image per recipe carries
// the principal flag; SetPrincipal clears and sets inside one transaction.
type Media struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RecipeID     uint      `gorm:"not null;index:idx_media_recipe" json:"recipe_id"`
	Kind         string    `gorm:"not null;default:image" json:"kind"`
	Path         string    `gorm:"not null" json:"path"`
	OriginalName string    `json:"original_name"`
	Description  string    `json:"description"`
	SizeBytes    int64     `json:"size_bytes"`
	Principal    bool      `gorm:"not null;default:false;index:idx_media_recipe" json:"principal"`
	CreatedAt    time.Time `json:"created_at"`
}

func IsValidMediaKind(kind string) bool {
	return kind == MediaImage || kind == MediaVideo
}
