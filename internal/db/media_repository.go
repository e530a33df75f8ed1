package db

import (
	"errors"

	"github.com/ggrange/cuistot/internal/models"
	"gorm.io/gorm"
)

type MediaRepository struct {
	database *gorm.DB
}

func NewMediaRepository(database *gorm.DB) *MediaRepository {
	return &MediaRepository{database: database}
}

func (repo *MediaRepository) ListByRecipe(recipeID uint) ([]models.Media, error) {
	media := make([]models.Media, 0)
	if err := repo.database.
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC, id DESC").
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (repo *MediaRepository) FindByID(mediaID uint) (models.Media, bool, error) {
	var media models.Media
	if err := repo.database.First(&media, mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Media{}, false, nil
		}
		return models.Media{}, false, err
	}
	return media, true, nil
}

func (repo *MediaRepository) Create(media *models.Media) error {
	return repo.database.Create(media).Error
}

func (repo *MediaRepository) UpdateDescription(mediaID uint, description string) error {
	return repo.database.Model(&models.Media{}).
		Where("id = ?", mediaID).
		Update("description", description).Error
}

func (repo *MediaRepository) Delete(mediaID uint) error {
	return repo.database.Delete(&models.Media{}, mediaID).Error
}

// SetPrincipal clears the recipe's current principal flag and sets the new one
// in a single transaction, so no request ever observes zero or two principal
// images for the recipe.
func (repo *MediaRepository) SetPrincipal(mediaID uint, recipeID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Media{}).
			Where("recipe_id = ?", recipeID).
			Update("principal", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Media{}).
			Where("id = ?", mediaID).
			Update("principal", true).Error
	})
}

func (repo *MediaRepository) FindPrincipalByRecipe(recipeID uint) (models.Media, bool, error) {
	media := models.Media{}
	result := repo.database.
		Where("recipe_id = ? AND principal = ? AND kind = ?", recipeID, true, models.MediaImage).
		Limit(1).
		Find(&media)
	if result.Error != nil {
		return models.Media{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Media{}, false, nil
	}
	return media, true, nil
}
