package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/iskiospa/iskio-api/utils"
)

const maxImageBytes = 8 << 20

// UploadServiceImage stores the multipart "imagen" file and returns its URL
// for use as a service imagen_url.
func UploadServiceImage(c *fiber.Ctx) error {
	if utils.Images == nil {
		return utils.Fail(c, fiber.StatusServiceUnavailable, "La carga de imágenes no está configurada", nil)
	}

	header, err := c.FormFile("imagen")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Debes adjuntar una imagen", nil)
	}
	if header.Size > maxImageBytes {
		return utils.Fail(c, fiber.StatusBadRequest, "La imagen supera el tamaño máximo de 8 MB", nil)
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return utils.Fail(c, fiber.StatusBadRequest, "El archivo debe ser una imagen", nil)
	}

	file, err := header.Open()
	if err != nil {
		return respond(c, err, "Failed to read image")
	}
	defer file.Close()

	url, err := utils.Images.Upload(c.UserContext(), file, uuid.NewString())
	if err != nil {
		return respond(c, err, "Failed to upload image")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
