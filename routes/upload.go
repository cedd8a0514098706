package routes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type uploadController struct {
	dir string
	log *zap.Logger
}

// Image upload handler
func (h *uploadController) upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to get uploaded file")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return fiber.NewError(fiber.StatusBadRequest, "Unsupported image type")
	}

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return err
	}

	// Generate unique filename
	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.dir, filename)); err != nil {
		h.log.Error("save upload", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file")
	}

	// The path is what gets stored as a product imageUrl
	path := "/uploads/" + filename
	return c.JSON(fiber.Map{
		"filename": filename,
		"path":     path,
		"imageUrl": path,
	})
}
