package client

import (
	"fmt"
	"net/http"
)

const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoCancelada  = "cancelada"
)

// NewCita is the public booking payload. Fecha is sent as
// "YYYY-MM-DD 00:00:00" and Hora as "HH:MM:00".
type NewCita struct {
	Nombre     string `json:"nombre"`
	Correo     string `json:"correo"`
	Telefono   string `json:"telefono"`
	Rut        string `json:"rut,omitempty"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	ServicioID uint   `json:"servicio_id"`
}

type CitaCreated struct {
	Message string `json:"message"`
	CitaID  uint   `json:"cita_id"`
}

func (c *Client) CreateCita(cita NewCita) (CitaCreated, error) {
	var created CitaCreated
	err := c.do(http.MethodPost, "/citas", cita, &created)
	return created, err
}

// AdminCita is one row of the admin appointment list.
type AdminCita struct {
	ID         uint    `json:"id"`
	Cliente    string  `json:"cliente"`
	Correo     string  `json:"correo"`
	Telefono   string  `json:"telefono"`
	Rut        *string `json:"rut"`
	Servicio   string  `json:"servicio"`
	ServicioID uint    `json:"servicio_id"`
	Fecha      string  `json:"fecha"`
	Hora       string  `json:"hora"`
	Estado     string  `json:"estado"`
}

func (c *Client) ListCitasAdmin() ([]AdminCita, error) {
	var citas []AdminCita
	if err := c.do(http.MethodGet, "/citas", nil, &citas); err != nil {
		return nil, err
	}
	for i := range citas {
		if citas[i].Estado == "" {
			citas[i].Estado = EstadoPendiente
		}
	}
	return citas, nil
}

// CitaUpdate carries the fields an admin may change; nil fields are left alone.
type CitaUpdate struct {
	Estado     *string `json:"estado,omitempty"`
	Fecha      *string `json:"fecha,omitempty"`
	Hora       *string `json:"hora,omitempty"`
	ServicioID *uint   `json:"servicio_id,omitempty"`
}

func (c *Client) UpdateCitaAdmin(id uint, update CitaUpdate) error {
	return c.do(http.MethodPut, fmt.Sprintf("/citas?id=%d", id), update, nil)
}

func (c *Client) DeleteCitaAdmin(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/citas?id=%d", id), nil, nil)
}
