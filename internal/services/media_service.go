package services

import (
	"errors"
	"log"
	"os"

	"github.com/ggrange/cuistot/internal/db"
	"github.com/ggrange/cuistot/internal/models"
)

var (
	ErrMediaNotFound     = errors.New("media not found")
	ErrMediaNotImage     = errors.New("only an image can be the principal photo")
	ErrInvalidMediaKind  = errors.New("invalid media kind")
	ErrMediaPathRequired = errors.New("media path is required")
)

type MediaInput struct {
	RecipeID     uint
	Kind         string
	Path         string
	OriginalName string
	Description  string
	SizeBytes    int64
}

type MediaService struct {
	media   *db.MediaRepository
	recipes *db.RecipeRepository
}

func NewMediaService(media *db.MediaRepository, recipes *db.RecipeRepository) *MediaService {
	return &MediaService{
		media:   media,
		recipes: recipes,
	}
}

func (service *MediaService) ListByRecipe(recipeID uint) ([]models.Media, error) {
	return service.media.ListByRecipe(recipeID)
}

func (service *MediaService) Create(input MediaInput) (models.Media, error) {
	if !models.IsValidMediaKind(input.Kind) {
		return models.Media{}, ErrInvalidMediaKind
	}
	if input.Path == "" {
		return models.Media{}, ErrMediaPathRequired
	}

	_, found, err := service.recipes.FindByID(input.RecipeID)
	if err != nil {
		return models.Media{}, err
	}
	if !found {
		return models.Media{}, ErrRecipeNotFound
	}

	media := models.Media{
		RecipeID:     input.RecipeID,
		Kind:         input.Kind,
		Path:         input.Path,
		OriginalName: input.OriginalName,
		Description:  input.Description,
		SizeBytes:    input.SizeBytes,
	}
	if err := service.media.Create(&media); err != nil {
		return models.Media{}, err
	}
	return media, nil
}

func (service *MediaService) UpdateDescription(mediaID uint, description string) error {
	_, found, err := service.media.FindByID(mediaID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMediaNotFound
	}
	return service.media.UpdateDescription(mediaID, description)
}

// Delete removes the row, then the file. A file that is already gone only
// logs; the database row is the source of truth.
func (service *MediaService) Delete(mediaID uint) error {
	media, found, err := service.media.FindByID(mediaID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMediaNotFound
	}

	if err := service.media.Delete(mediaID); err != nil {
		return err
	}

	if err := os.Remove(media.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("media: remove file %s: %v", media.Path, err)
	}
	return nil
}

// SetPrincipal marks the media as its recipe's cover image, atomically
// demoting whichever image held the flag.
func (service *MediaService) SetPrincipal(mediaID uint) error {
	media, found, err := service.media.FindByID(mediaID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMediaNotFound
	}
	if media.Kind != models.MediaImage {
		return ErrMediaNotImage
	}
	return service.media.SetPrincipal(mediaID, media.RecipeID)
}

func (service *MediaService) PrincipalByRecipe(recipeID uint) (models.Media, bool, error) {
	return service.media.FindPrincipalByRecipe(recipeID)
}
