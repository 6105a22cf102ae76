package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"gorm.io/gorm"
)

const topServiciosWindow = 30 * 24 * time.Hour

type topServicio struct {
	ServicioID     uint   `json:"servicio_id"`
	ServicioNombre string `json:"servicio_nombre"`
	TotalCitas     int64  `json:"total_citas"`
}

func topServicios(conn *gorm.DB, since string, limit int) ([]topServicio, error) {
	rows := []topServicio{}
	err := conn.Table("citas").
		Select("citas.servicio_id AS servicio_id, servicios.nombre AS servicio_nombre, COUNT(citas.id) AS total_citas").
		Joins("JOIN servicios ON servicios.id = citas.servicio_id").
		Where("citas.fecha >= ? AND citas.estado <> ?", since, models.EstadoCancelada).
		Group("citas.servicio_id, servicios.nombre").
		Order("total_citas desc, servicio_nombre asc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func citasDelDia(conn *gorm.DB, fecha string) ([]adminCita, error) {
	var citas []models.Cita
	if err := conn.Preload("Servicio").
		Where("fecha = ?", fecha).
		Order("hora asc").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	rows := make([]adminCita, 0, len(citas))
	for _, cita := range citas {
		rows = append(rows, toAdminCita(cita))
	}
	return rows, nil
}

// GetDashboardOverview returns the admin summary counters.
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalCitas      int64         `json:"total_citas"`
		CitasHoy        int64         `json:"citas_hoy"`
		Clientes        int64         `json:"clientes"`
		Servicios       int64         `json:"servicios"`
		TopServicios30d []topServicio `json:"top_servicios_30d"`
	}

	today := utils.Today()
	if err := db.DB.Model(&models.Cita{}).Count(&statistics.TotalCitas).Error; err != nil {
		return respond(c, err, "Failed to load dashboard")
	}
	counts := []*gorm.DB{
		db.DB.Model(&models.Cita{}).
			Where("fecha = ? AND estado <> ?", today, models.EstadoCancelada).
			Count(&statistics.CitasHoy),
		db.DB.Model(&models.Cita{}).Distinct("correo").Count(&statistics.Clientes),
		db.DB.Model(&models.Service{}).Where("activo = ?", true).Count(&statistics.Servicios),
	}
	for _, result := range counts {
		if result.Error != nil {
			return respond(c, result.Error, "Failed to load dashboard")
		}
	}

	since := utils.Now().In(utils.Location).Add(-topServiciosWindow).Format(models.DateLayout)
	top, err := topServicios(db.DB, since, 5)
	if err != nil {
		return respond(c, err, "Failed to load dashboard")
	}
	statistics.TopServicios30d = top

	return c.JSON(statistics)
}

func GetDashboardCitasHoy(c *fiber.Ctx) error {
	rows, err := citasDelDia(db.DB, utils.Today())
	if err != nil {
		return respond(c, err, "Failed to fetch today's citas")
	}
	return c.JSON(rows)
}

func GetDashboardTopServicios(c *fiber.Ctx) error {
	since := utils.Now().In(utils.Location).Add(-topServiciosWindow).Format(models.DateLayout)
	rows, err := topServicios(db.DB, since, c.QueryInt("limit", 10))
	if err != nil {
		return respond(c, err, "Failed to fetch top services")
	}
	return c.JSON(rows)
}
