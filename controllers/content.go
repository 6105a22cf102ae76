package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
)

type homeContentPayload struct {
	Titulo     *string `json:"titulo"`
	Subtitulo  *string `json:"subtitulo"`
	ImagenURL  *string `json:"imagen_url"`
	VideoEmbed *string `json:"video_embed"`
}

func (p *homeContentPayload) apply(item *models.HomeContent) error {
	if p.Titulo != nil {
		item.Titulo = strings.TrimSpace(*p.Titulo)
	}
	if p.Subtitulo != nil {
		item.Subtitulo = strings.TrimSpace(*p.Subtitulo)
	}
	if p.ImagenURL != nil {
		item.ImagenURL = strings.TrimSpace(*p.ImagenURL)
	}
	if p.VideoEmbed != nil {
		item.VideoEmbed = optionalText(p.VideoEmbed)
	}
	if item.Titulo == "" {
		return badRequest("El título es obligatorio")
	}
	return nil
}

func GetHomeContent(c *fiber.Ctx) error {
	items := []models.HomeContent{}
	if err := db.DB.Order("id asc").Find(&items).Error; err != nil {
		return respond(c, err, "Failed to fetch home content")
	}
	return c.JSON(items)
}

func CreateHomeContent(c *fiber.Ctx) error {
	payload := new(homeContentPayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	var item models.HomeContent
	if err := payload.apply(&item); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Create(&item).Error; err != nil {
		return respond(c, err, "Failed to create home content")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateHomeContent(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	payload := new(homeContentPayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	var item models.HomeContent
	if db.DB.First(&item, id).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Contenido no encontrado", nil)
	}
	if err := payload.apply(&item); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return respond(c, err, "Failed to update home content")
	}
	return c.JSON(item)
}

func DeleteHomeContent(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	result := db.DB.Delete(&models.HomeContent{}, id)
	if result.Error != nil {
		return respond(c, result.Error, "Failed to delete home content")
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Contenido no encontrado", nil)
	}
	return c.JSON(fiber.Map{"message": "Contenido eliminado"})
}

type instagramPayload struct {
	EmbedURL *string `json:"embed_url"`
	Activo   *bool   `json:"activo"`
	Orden    *int    `json:"orden"`
}

func (p *instagramPayload) apply(post *models.InstagramPost) error {
	if p.EmbedURL != nil {
		post.EmbedURL = strings.TrimSpace(*p.EmbedURL)
	}
	if p.Activo != nil {
		post.Activo = *p.Activo
	}
	if p.Orden != nil {
		post.Orden = *p.Orden
	}
	if post.EmbedURL == "" {
		return badRequest("La URL del post es obligatoria")
	}
	return nil
}

// GetInstagramPosts lists every post; inactive ones are hidden by the site.
func GetInstagramPosts(c *fiber.Ctx) error {
	posts := []models.InstagramPost{}
	if err := db.DB.Order("orden asc, id asc").Find(&posts).Error; err != nil {
		return respond(c, err, "Failed to fetch instagram posts")
	}
	return c.JSON(posts)
}

func CreateInstagramPost(c *fiber.Ctx) error {
	payload := new(instagramPayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	post := models.InstagramPost{Activo: true}
	if err := payload.apply(&post); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return respond(c, err, "Failed to create instagram post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func UpdateInstagramPost(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	payload := new(instagramPayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	var post models.InstagramPost
	if db.DB.First(&post, id).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Post no encontrado", nil)
	}
	if err := payload.apply(&post); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Save(&post).Error; err != nil {
		return respond(c, err, "Failed to update instagram post")
	}
	return c.JSON(post)
}

func DeleteInstagramPost(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	result := db.DB.Delete(&models.InstagramPost{}, id)
	if result.Error != nil {
		return respond(c, result.Error, "Failed to delete instagram post")
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Post no encontrado", nil)
	}
	return c.JSON(fiber.Map{"message": "Post eliminado"})
}
