package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"gorm.io/gorm"
)

// servicePayload uses pointers so PUT can update a subset of fields.
type servicePayload struct {
	Nombre            *string          `json:"nombre"`
	Etiqueta          *string          `json:"etiqueta"`
	Subtitulo         *string          `json:"subtitulo"`
	Descripcion       *string          `json:"descripcion"`
	Beneficios        *models.Benefits `json:"beneficios"`
	ImagenURL         *string          `json:"imagen_url"`
	Precio            *float64         `json:"precio"`
	Activo            *bool            `json:"activo"`
	Orden             *int             `json:"orden"`
	CategoriaID       nullableID       `json:"categoria_id"`
	MostrarServicios  *bool            `json:"mostrar_servicios"`
	MostrarEmpresas   *bool            `json:"mostrar_empresas"`
	CTAPrimaryLabel   *string          `json:"cta_primary_label"`
	CTAPrimaryURL     *string          `json:"cta_primary_url"`
	CTASecondaryLabel *string          `json:"cta_secondary_label"`
	CTASecondaryURL   *string          `json:"cta_secondary_url"`
}

func (p *servicePayload) apply(s *models.Service) error {
	if p.Nombre != nil {
		s.Nombre = strings.TrimSpace(*p.Nombre)
	}
	if p.Etiqueta != nil {
		s.Etiqueta = optionalText(p.Etiqueta)
	}
	if p.Subtitulo != nil {
		s.Subtitulo = optionalText(p.Subtitulo)
	}
	if p.Descripcion != nil {
		s.Descripcion = strings.TrimSpace(*p.Descripcion)
	}
	if p.Beneficios != nil {
		s.Beneficios = *p.Beneficios
	}
	if p.ImagenURL != nil {
		s.ImagenURL = strings.TrimSpace(*p.ImagenURL)
	}
	if p.Precio != nil {
		if *p.Precio < 0 {
			return badRequest("El precio no puede ser negativo")
		}
		s.Precio = *p.Precio
	}
	if p.Activo != nil {
		s.Activo = *p.Activo
	}
	if p.Orden != nil {
		s.Orden = *p.Orden
	}
	if p.CategoriaID.Set {
		s.CategoriaID = p.CategoriaID.Value
	}
	if p.MostrarServicios != nil {
		s.MostrarServicios = *p.MostrarServicios
	}
	if p.MostrarEmpresas != nil {
		s.MostrarEmpresas = *p.MostrarEmpresas
	}
	if p.CTAPrimaryLabel != nil {
		s.CTAPrimaryLabel = optionalText(p.CTAPrimaryLabel)
	}
	if p.CTAPrimaryURL != nil {
		s.CTAPrimaryURL = optionalText(p.CTAPrimaryURL)
	}
	if p.CTASecondaryLabel != nil {
		s.CTASecondaryLabel = optionalText(p.CTASecondaryLabel)
	}
	if p.CTASecondaryURL != nil {
		s.CTASecondaryURL = optionalText(p.CTASecondaryURL)
	}
	if s.Nombre == "" {
		return badRequest("El nombre es obligatorio")
	}
	return nil
}

// GetAllServices returns every service ordered for display. Public pages
// filter by activo and the listing flags themselves.
func GetAllServices(c *fiber.Ctx) error {
	services := []models.Service{}
	if err := db.DB.Order("orden asc, id asc").Find(&services).Error; err != nil {
		return respond(c, err, "Failed to fetch services")
	}
	return c.JSON(services)
}

// CreateService creates a new service
func CreateService(c *fiber.Ctx) error {
	payload := new(servicePayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	service := models.Service{Activo: true, Beneficios: models.Benefits{}}
	if err := payload.apply(&service); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return respond(c, err, "Failed to create service")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": service.ID})
}

// UpdateService updates a service
func UpdateService(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	payload := new(servicePayload)
	if err := c.BodyParser(payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "Servicio no encontrado", nil)
		}
		return respond(c, err, "Failed to fetch service")
	}
	if err := payload.apply(&service); err != nil {
		return respond(c, err, "Invalid request")
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return respond(c, err, "Failed to update service")
	}
	return c.JSON(fiber.Map{"message": "Servicio actualizado"})
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Servicio no encontrado", nil)
	}
	var pending int64
	if err := db.DB.Model(&models.Cita{}).Where("servicio_id = ? AND estado <> ?", id, models.EstadoCancelada).Count(&pending).Error; err != nil {
		return respond(c, err, "Failed to check service citas")
	}
	if pending > 0 {
		return utils.Fail(c, fiber.StatusConflict, "El servicio tiene citas vigentes; desactívalo en lugar de eliminarlo", nil)
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return respond(c, err, "Failed to delete service")
	}
	return c.JSON(fiber.Map{"message": "Servicio eliminado"})
}

// GetCategories lists service categories ordered for display.
func GetCategories(c *fiber.Ctx) error {
	categories := []models.Category{}
	if err := db.DB.Order("orden asc, id asc").Find(&categories).Error; err != nil {
		return respond(c, err, "Failed to fetch categories")
	}
	return c.JSON(categories)
}
