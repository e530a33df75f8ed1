package api

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ggrange/cuistot/internal/models"
	"github.com/ggrange/cuistot/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".avi":  true,
	".mov":  true,
}

// mediaKindForExtension classifies an upload by its file extension, which also
// acts as the upload whitelist.
func mediaKindForExtension(ext string) (string, bool) {
	switch {
	case imageExtensions[ext]:
		return models.MediaImage, true
	case videoExtensions[ext]:
		return models.MediaVideo, true
	default:
		return "", false
	}
}

func (handler *Handler) GetMediaByRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c.Params("recipeId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}
	media, err := handler.mediaService.ListByRecipe(recipeID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch media")
	}
	return c.JSON(media)
}

func (handler *Handler) UploadMedia(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.FormValue("recipe_id"), 10, 32)
	if err != nil || recipeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > handler.maxUploadBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "file exceeds upload limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	kind, ok := mediaKindForExtension(ext)
	if !ok {
		return apiError(c, fiber.StatusUnsupportedMediaType, "unsupported file type")
	}

	storedPath := filepath.Join(handler.uploadDir, uuid.NewString()+ext)
	if err := c.SaveFile(fileHeader, storedPath); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}

	media, err := handler.mediaService.Create(services.MediaInput{
		RecipeID:     uint(recipeID),
		Kind:         kind,
		Path:         storedPath,
		OriginalName: fileHeader.Filename,
		Description:  c.FormValue("description"),
		SizeBytes:    fileHeader.Size,
	})
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return apiError(c, fiber.StatusUnprocessableEntity, "recipe not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save media")
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

type mediaDescriptionPayload struct {
	Description string `json:"description"`
}

func (handler *Handler) UpdateMediaDescription(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	payload := mediaDescriptionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.mediaService.UpdateDescription(mediaID, payload.Description); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return apiError(c, fiber.StatusNotFound, "media not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update media")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) SetPrincipalMedia(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.mediaService.SetPrincipal(mediaID); err != nil {
		switch {
		case errors.Is(err, services.ErrMediaNotFound):
			return apiError(c, fiber.StatusNotFound, "media not found")
		case errors.Is(err, services.ErrMediaNotImage):
			return apiError(c, fiber.StatusUnprocessableEntity, "only an image can be the principal photo")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to set principal photo")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteMedia(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.mediaService.Delete(mediaID); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return apiError(c, fiber.StatusNotFound, "media not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete media")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
