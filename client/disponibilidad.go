package client

import (
	"net/http"
	"net/url"
)

// Slot is one (fecha, hora) availability record.
type Slot struct {
	Fecha   string `json:"fecha"`
	Hora    string `json:"hora"`
	Activo  Flag   `json:"activo"`
	Ocupada Flag   `json:"ocupada"`
}

// SlotRange is the cross product of dates and hours sent to the bulk endpoints.
type SlotRange struct {
	Fechas []string `json:"fechas"`
	Horas  []string `json:"horas"`
}

// Size is the number of (fecha, hora) pairs covered.
func (r SlotRange) Size() int {
	return len(r.Fechas) * len(r.Horas)
}

type BulkResult struct {
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Omitidas int    `json:"omitidas,omitempty"`
}

// ListDiasDisponibles returns the days in [desde, hasta] with at least one
// active, unoccupied hour.
func (c *Client) ListDiasDisponibles(desde, hasta string) ([]string, error) {
	query := url.Values{"desde": {desde}, "hasta": {hasta}, "modo": {"dias"}}
	var days []string
	if err := c.do(http.MethodGet, "/disponibilidad?"+query.Encode(), nil, &days); err != nil {
		return nil, err
	}
	if days == nil {
		days = []string{}
	}
	return days, nil
}

// GetDisponibilidadPorFecha returns the free hours of one day.
func (c *Client) GetDisponibilidadPorFecha(fecha string) ([]string, error) {
	var resp struct {
		Fecha string   `json:"fecha"`
		Horas []string `json:"horas"`
	}
	if err := c.do(http.MethodGet, "/disponibilidad?"+url.Values{"fecha": {fecha}}.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Horas == nil {
		return []string{}, nil
	}
	return resp.Horas, nil
}

// ListSlotsDisponibles returns slot detail for the admin view.
func (c *Client) ListSlotsDisponibles(desde, hasta string, includeInactive bool) ([]Slot, error) {
	path := "/disponibilidad?" + url.Values{"desde": {desde}, "hasta": {hasta}}.Encode()
	if includeInactive {
		path += "&include_inactive=1"
	}
	var slots []Slot
	if err := c.do(http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []Slot{}
	}
	return slots, nil
}

func (c *Client) CreateDisponibilidad(r SlotRange) (BulkResult, error) {
	var result BulkResult
	err := c.do(http.MethodPost, "/disponibilidad", r, &result)
	return result, err
}

func (c *Client) DeleteDisponibilidad(r SlotRange) (BulkResult, error) {
	var result BulkResult
	err := c.do(http.MethodDelete, "/disponibilidad", r, &result)
	return result, err
}
