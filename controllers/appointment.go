package controllers

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/cache"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const slotTakenMessage = "El horario seleccionado ya no está disponible"

type createCitaRequest struct {
	Nombre     string  `json:"nombre"`
	Correo     string  `json:"correo"`
	Telefono   string  `json:"telefono"`
	Rut        *string `json:"rut"`
	Fecha      string  `json:"fecha"`
	Hora       string  `json:"hora"`
	ServicioID uint    `json:"servicio_id"`
}

type updateCitaRequest struct {
	Estado     *models.CitaEstado `json:"estado"`
	Fecha      *string            `json:"fecha"`
	Hora       *string            `json:"hora"`
	ServicioID *uint              `json:"servicio_id"`
}

// adminCita is the row shape of the admin appointment list.
type adminCita struct {
	ID         uint              `json:"id"`
	Cliente    string            `json:"cliente"`
	Correo     string            `json:"correo"`
	Telefono   string            `json:"telefono"`
	Rut        *string           `json:"rut"`
	Servicio   string            `json:"servicio"`
	ServicioID uint              `json:"servicio_id"`
	Fecha      string            `json:"fecha"`
	Hora       string            `json:"hora"`
	Estado     models.CitaEstado `json:"estado"`
}

func toAdminCita(cita models.Cita) adminCita {
	return adminCita{
		ID:         cita.ID,
		Cliente:    cita.Nombre,
		Correo:     cita.Correo,
		Telefono:   cita.Telefono,
		Rut:        cita.Rut,
		Servicio:   cita.Servicio.Nombre,
		ServicioID: cita.ServicioID,
		Fecha:      cita.Fecha,
		Hora:       cita.Hora,
		Estado:     cita.Estado,
	}
}

func (r *createCitaRequest) validate() (models.Cita, error) {
	cita := models.Cita{
		Nombre:     strings.TrimSpace(r.Nombre),
		Correo:     strings.TrimSpace(r.Correo),
		Telefono:   strings.TrimSpace(r.Telefono),
		Rut:        optionalText(r.Rut),
		ServicioID: r.ServicioID,
		Estado:     models.EstadoPendiente,
	}
	if cita.Nombre == "" || cita.Correo == "" || cita.Telefono == "" || r.ServicioID == 0 {
		return cita, badRequest("Faltan campos obligatorios")
	}
	if _, err := mail.ParseAddress(cita.Correo); err != nil {
		return cita, badRequest("Correo inválido")
	}
	fecha, err := models.NormalizeFecha(r.Fecha)
	if err != nil {
		return cita, badRequest("Fecha inválida")
	}
	hora, err := models.NormalizeHora(r.Hora)
	if err != nil {
		return cita, badRequest("Hora inválida")
	}
	cita.Fecha, cita.Hora = fecha, hora
	return cita, nil
}

func findActiveService(tx *gorm.DB, id uint) (models.Service, error) {
	var service models.Service
	if err := tx.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service, notFound("Servicio no encontrado")
		}
		return service, err
	}
	if !service.Activo {
		return service, badRequest("El servicio no está disponible")
	}
	return service, nil
}

// CreateCita books a slot for a client. The slot is claimed with a
// conditional update, so only one of two concurrent requests can win it.
func CreateCita(c *fiber.Ctx) error {
	input := new(createCitaRequest)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	cita, err := input.validate()
	if err != nil {
		return respond(c, err, "Invalid request")
	}

	var service models.Service
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		found, err := findActiveService(tx, cita.ServicioID)
		if err != nil {
			return err
		}
		service = found

		claimed, err := utils.ClaimSlot(tx, cita.Fecha, cita.Hora)
		if err != nil {
			return err
		}
		if !claimed {
			return conflict(slotTakenMessage)
		}
		return tx.Create(&cita).Error
	})
	if err != nil {
		return respond(c, err, "Failed to create appointment")
	}

	cache.Days.Invalidate(c.UserContext())
	logrus.WithFields(logrus.Fields{"cita_id": cita.ID, "fecha": cita.Fecha, "hora": cita.Hora}).Info("Appointment booked")
	utils.SendEmailAsync(cita.Correo, "Reserva recibida - ISKIO Spa", citaEmailBody(cita, service.Nombre,
		"Recibimos tu reserva. Te confirmaremos a la brevedad."))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Cita agendada correctamente",
		"cita_id": cita.ID,
	})
}

// ListCitas returns every appointment, newest date first.
func ListCitas(c *fiber.Ctx) error {
	var citas []models.Cita
	if err := db.DB.Preload("Servicio").Order("fecha desc, hora desc").Find(&citas).Error; err != nil {
		return respond(c, err, "Failed to fetch appointments")
	}
	result := make([]adminCita, 0, len(citas))
	for _, cita := range citas {
		result = append(result, toAdminCita(cita))
	}
	return c.JSON(result)
}

// UpdateCita changes estado, slot or service. Moving to another slot claims
// the new one before releasing the old; cancelling releases the slot.
func UpdateCita(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}
	input := new(updateCitaRequest)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}

	var cita models.Cita
	var previous models.CitaEstado
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Servicio").First(&cita, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Cita no encontrada")
			}
			return err
		}
		previous = cita.Estado
		heldBefore := cita.HoldsSlot()
		oldFecha, oldHora := cita.Fecha, cita.Hora

		if input.Estado != nil {
			if err := cita.CanTransition(*input.Estado); err != nil {
				return conflict(err.Error())
			}
			cita.Estado = *input.Estado
		}
		if input.Fecha != nil {
			fecha, err := models.NormalizeFecha(*input.Fecha)
			if err != nil {
				return badRequest("Fecha inválida")
			}
			cita.Fecha = fecha
		}
		if input.Hora != nil {
			hora, err := models.NormalizeHora(*input.Hora)
			if err != nil {
				return badRequest("Hora inválida")
			}
			cita.Hora = hora
		}
		if input.ServicioID != nil && *input.ServicioID != cita.ServicioID {
			service, err := findActiveService(tx, *input.ServicioID)
			if err != nil {
				return err
			}
			cita.ServicioID = service.ID
			cita.Servicio = service
		}

		moved := cita.Fecha != oldFecha || cita.Hora != oldHora
		if heldBefore && cita.HoldsSlot() && moved {
			claimed, err := utils.ClaimSlot(tx, cita.Fecha, cita.Hora)
			if err != nil {
				return err
			}
			if !claimed {
				return conflict(slotTakenMessage)
			}
		}
		if heldBefore && (!cita.HoldsSlot() || moved) {
			if err := utils.ReleaseSlot(tx, oldFecha, oldHora); err != nil {
				return err
			}
		}

		return tx.Omit("Servicio").Save(&cita).Error
	})
	if err != nil {
		return respond(c, err, "Failed to update appointment")
	}

	cache.Days.Invalidate(c.UserContext())
	if previous != cita.Estado {
		notifyEstado(cita)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cita actualizada",
	})
}

// DeleteCita removes the appointment and frees its slot.
func DeleteCita(c *fiber.Ctx) error {
	id, err := queryID(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var cita models.Cita
		if err := tx.First(&cita, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Cita no encontrada")
			}
			return err
		}
		if cita.HoldsSlot() {
			if err := utils.ReleaseSlot(tx, cita.Fecha, cita.Hora); err != nil {
				return err
			}
		}
		return tx.Delete(&cita).Error
	})
	if err != nil {
		return respond(c, err, "Failed to delete appointment")
	}

	cache.Days.Invalidate(c.UserContext())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cita eliminada",
	})
}

func notifyEstado(cita models.Cita) {
	switch cita.Estado {
	case models.EstadoConfirmada:
		utils.SendEmailAsync(cita.Correo, "Reserva confirmada - ISKIO Spa",
			citaEmailBody(cita, cita.Servicio.Nombre, "Tu reserva está confirmada. ¡Te esperamos!"))
	case models.EstadoCancelada:
		utils.SendEmailAsync(cita.Correo, "Reserva cancelada - ISKIO Spa",
			citaEmailBody(cita, cita.Servicio.Nombre, "Tu reserva fue cancelada. Escríbenos si quieres reagendar."))
	}
}

func citaEmailBody(cita models.Cita, servicio, intro string) string {
	return fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>%s</p>
		<ul>
			<li><strong>Servicio:</strong> %s</li>
			<li><strong>Fecha:</strong> %s</li>
			<li><strong>Hora:</strong> %s</li>
			<li><strong>Estado:</strong> %s</li>
		</ul>
		<p>ISKIO Spa</p>
	`, cita.Nombre, intro, servicio, cita.Fecha, cita.Hora, cita.Estado)
}
