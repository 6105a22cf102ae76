package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type CitaEstado string

const (
	EstadoPendiente  CitaEstado = "pendiente"
	EstadoConfirmada CitaEstado = "confirmada"
	EstadoCancelada  CitaEstado = "cancelada"
)

func (e CitaEstado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoConfirmada, EstadoCancelada:
		return true
	}
	return false
}

// Cita is a booked appointment for one slot.
type Cita struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Nombre     string     `json:"cliente" gorm:"size:160;not null"`
	Correo     string     `json:"correo" gorm:"size:160;not null;index"`
	Telefono   string     `json:"telefono" gorm:"size:40;not null"`
	Rut        *string    `json:"rut,omitempty" gorm:"size:20"`
	ServicioID uint       `json:"servicio_id" gorm:"index;not null"`
	Servicio   Service    `json:"-" gorm:"foreignKey:ServicioID"`
	Fecha      string     `json:"fecha" gorm:"size:10;not null;index"`
	Hora       string     `json:"hora" gorm:"size:5;not null"`
	Estado     CitaEstado `json:"estado" gorm:"size:20;not null"`
	CreatedAt  time.Time  `json:"creado_en"`
	UpdatedAt  time.Time  `json:"-"`
}

func (Cita) TableName() string { return "citas" }

func (c *Cita) BeforeCreate(tx *gorm.DB) error {
	if c.Estado == "" {
		c.Estado = EstadoPendiente
	}
	return nil
}

// HoldsSlot reports whether the cita keeps its slot occupied.
func (c *Cita) HoldsSlot() bool {
	return c.Estado != EstadoCancelada
}

// CanTransition validates an admin status change.
func (c *Cita) CanTransition(newEstado CitaEstado) error {
	if !newEstado.Valid() {
		return fmt.Errorf("invalid estado %q", newEstado)
	}
	if newEstado == c.Estado {
		return nil
	}
	switch c.Estado {
	case EstadoPendiente:
		if newEstado != EstadoConfirmada && newEstado != EstadoCancelada {
			return fmt.Errorf("invalid transition from pendiente to %s", newEstado)
		}
	case EstadoConfirmada:
		if newEstado != EstadoPendiente && newEstado != EstadoCancelada {
			return fmt.Errorf("invalid transition from confirmada to %s", newEstado)
		}
	case EstadoCancelada:
		return fmt.Errorf("no transitions allowed from %s", c.Estado)
	}
	return nil
}
