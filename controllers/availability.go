package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/cache"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxBulkSlots bounds one bulk request: a full year of every default hour fits.
const maxBulkSlots = 366 * 24

type bulkSlotsRequest struct {
	Fechas []string `json:"fechas"`
	Horas  []string `json:"horas"`
}

// GetDisponibilidad serves the three read modes of /disponibilidad:
// ?fecha= (hours of one day), ?desde&hasta&modo=dias (days with free slots)
// and ?desde&hasta[&include_inactive=1] (slot detail).
func GetDisponibilidad(c *fiber.Ctx) error {
	if raw := c.Query("fecha"); raw != "" {
		fecha, err := models.NormalizeFecha(raw)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "Fecha inválida", nil)
		}
		horas := []string{}
		err = db.DB.Model(&models.Slot{}).
			Where("fecha = ? AND activo = ? AND ocupada = ?", fecha, true, false).
			Order("hora asc").
			Pluck("hora", &horas).Error
		if err != nil {
			return respond(c, err, "Failed to fetch availability")
		}
		if horas == nil {
			horas = []string{}
		}
		return c.JSON(fiber.Map{"fecha": fecha, "horas": horas})
	}

	desde, errDesde := models.NormalizeFecha(c.Query("desde"))
	hasta, errHasta := models.NormalizeFecha(c.Query("hasta"))
	if errDesde != nil || errHasta != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Debes indicar un rango de fechas válido", nil)
	}

	if c.Query("modo") == "dias" {
		return listAvailableDays(c, desde, hasta)
	}

	slots := []models.Slot{}
	if desde > hasta {
		return c.JSON(slots)
	}
	query := db.DB.Where("fecha BETWEEN ? AND ?", desde, hasta)
	if !config.ParseBool(c.Query("include_inactive"), false) {
		query = query.Where("activo = ?", true)
	}
	if err := query.Order("fecha asc, hora asc").Find(&slots).Error; err != nil {
		return respond(c, err, "Failed to fetch availability")
	}
	return c.JSON(slots)
}

func listAvailableDays(c *fiber.Ctx, desde, hasta string) error {
	days := []string{}
	if desde > hasta {
		return c.JSON(days)
	}
	cached, version, ok := cache.Days.GetDays(c.UserContext(), desde, hasta)
	if ok {
		return c.JSON(cached)
	}

	err := db.DB.Model(&models.Slot{}).
		Where("fecha BETWEEN ? AND ? AND activo = ? AND ocupada = ?", desde, hasta, true, false).
		Distinct().
		Order("fecha asc").
		Pluck("fecha", &days).Error
	if err != nil {
		return respond(c, err, "Failed to fetch available days")
	}
	if days == nil {
		days = []string{}
	}

	cache.Days.SetDays(c.UserContext(), version, desde, hasta, days)
	return c.JSON(days)
}

func parseBulkRequest(c *fiber.Ctx) ([]string, []string, error) {
	input := new(bulkSlotsRequest)
	if err := c.BodyParser(input); err != nil {
		return nil, nil, badRequest("Cannot parse JSON")
	}
	if len(input.Fechas) == 0 || len(input.Horas) == 0 {
		return nil, nil, badRequest("Debes indicar fechas y horas")
	}
	fechas, horas, err := models.NormalizeRange(input.Fechas, input.Horas)
	if err != nil {
		return nil, nil, badRequest(err.Error())
	}
	if len(fechas)*len(horas) > maxBulkSlots {
		return nil, nil, badRequest(fmt.Sprintf("Máximo %d horarios por solicitud", maxBulkSlots))
	}
	return fechas, horas, nil
}

// existingSlots indexes the stored slots of the cross product by fecha+hora.
func existingSlots(tx *gorm.DB, fechas, horas []string) (map[string]models.Slot, error) {
	var slots []models.Slot
	if err := tx.Where("fecha IN ? AND hora IN ?", fechas, horas).Find(&slots).Error; err != nil {
		return nil, err
	}
	index := make(map[string]models.Slot, len(slots))
	for _, slot := range slots {
		index[slot.Fecha+" "+slot.Hora] = slot
	}
	return index, nil
}

// CreateDisponibilidad enables every (fecha, hora) pair. Pairs that are
// already active are left alone and not counted.
func CreateDisponibilidad(c *fiber.Ctx) error {
	fechas, horas, err := parseBulkRequest(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}

	total := 0
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		index, err := existingSlots(tx, fechas, horas)
		if err != nil {
			return err
		}

		var created []models.Slot
		var reactivate []uint
		for _, fecha := range fechas {
			for _, hora := range horas {
				slot, ok := index[fecha+" "+hora]
				switch {
				case !ok:
					created = append(created, models.Slot{Fecha: fecha, Hora: hora, Activo: true})
				case !slot.Activo:
					reactivate = append(reactivate, slot.ID)
				}
			}
		}

		if len(created) > 0 {
			if err := tx.CreateInBatches(&created, 200).Error; err != nil {
				return err
			}
		}
		if len(reactivate) > 0 {
			if err := tx.Model(&models.Slot{}).Where("id IN ?", reactivate).Update("activo", true).Error; err != nil {
				return err
			}
		}
		total = len(created) + len(reactivate)
		return nil
	})
	if err != nil {
		return respond(c, err, "Failed to save availability")
	}

	cache.Days.Invalidate(c.UserContext())
	logrus.WithFields(logrus.Fields{"fechas": len(fechas), "horas": len(horas), "total": total}).Info("Availability enabled")
	return c.JSON(fiber.Map{
		"message": "Horarios habilitados",
		"total":   total,
	})
}

// DeleteDisponibilidad deactivates every active pair. Occupied slots keep
// their booking and are reported as skipped.
func DeleteDisponibilidad(c *fiber.Ctx) error {
	fechas, horas, err := parseBulkRequest(c)
	if err != nil {
		return respond(c, err, "Invalid request")
	}

	total, skipped := 0, 0
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		index, err := existingSlots(tx, fechas, horas)
		if err != nil {
			return err
		}

		var deactivate []uint
		for _, slot := range index {
			switch {
			case !slot.Activo:
			case slot.Ocupada:
				skipped++
			default:
				deactivate = append(deactivate, slot.ID)
			}
		}
		if len(deactivate) > 0 {
			if err := tx.Model(&models.Slot{}).Where("id IN ?", deactivate).Update("activo", false).Error; err != nil {
				return err
			}
		}
		total = len(deactivate)
		return nil
	})
	if err != nil {
		return respond(c, err, "Failed to remove availability")
	}

	cache.Days.Invalidate(c.UserContext())
	logrus.WithFields(logrus.Fields{"fechas": len(fechas), "horas": len(horas), "total": total, "omitidas": skipped}).Info("Availability disabled")
	return c.JSON(fiber.Map{
		"message":  "Horarios bloqueados",
		"total":    total,
		"omitidas": skipped,
	})
}
