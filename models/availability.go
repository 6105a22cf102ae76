package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// DefaultHours are the hour labels the spa offers on a working day.
var DefaultHours = []string{
	"10:00", "11:00", "12:00", "13:00",
	"15:00", "16:00", "17:00", "18:00", "19:00",
}

// Slot is one bookable (fecha, hora) unit.
type Slot struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Fecha     string    `json:"fecha" gorm:"size:10;not null;uniqueIndex:idx_disponibilidad_fecha_hora"`
	Hora      string    `json:"hora" gorm:"size:5;not null;uniqueIndex:idx_disponibilidad_fecha_hora"`
	Activo    bool      `json:"activo" gorm:"not null"`
	Ocupada   bool      `json:"ocupada" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Slot) TableName() string { return "disponibilidad" }

// Bookable reports whether a client may claim the slot.
func (s Slot) Bookable() bool {
	return s.Activo && !s.Ocupada
}

// NormalizeFecha accepts YYYY-MM-DD, optionally followed by a time part, and returns YYYY-MM-DD.
func NormalizeFecha(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(DateLayout) {
		value = strings.TrimSpace(strings.SplitN(strings.Replace(value, "T", " ", 1), " ", 2)[0])
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", value)
	}
	return parsed.Format(DateLayout), nil
}

// NormalizeHora accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeHora(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) == len("15:04:05") {
		value = value[:5]
	}
	parsed, err := time.Parse(HourLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid hour %q", value)
	}
	return parsed.Format(HourLayout), nil
}

// NormalizeRange validates both lists and removes duplicates, keeping the input order.
func NormalizeRange(fechas, horas []string) ([]string, []string, error) {
	dates := make([]string, 0, len(fechas))
	seenDates := map[string]bool{}
	for _, raw := range fechas {
		fecha, err := NormalizeFecha(raw)
		if err != nil {
			return nil, nil, err
		}
		if !seenDates[fecha] {
			seenDates[fecha] = true
			dates = append(dates, fecha)
		}
	}

	hours := make([]string, 0, len(horas))
	seenHours := map[string]bool{}
	for _, raw := range horas {
		hora, err := NormalizeHora(raw)
		if err != nil {
			return nil, nil, err
		}
		if !seenHours[hora] {
			seenHours[hora] = true
			hours = append(hours, hora)
		}
	}
	return dates, hours, nil
}
