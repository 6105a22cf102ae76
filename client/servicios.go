package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Service struct {
	ID                uint     `json:"id"`
	Nombre            string   `json:"nombre"`
	Etiqueta          *string  `json:"etiqueta"`
	Subtitulo         *string  `json:"subtitulo"`
	Descripcion       string   `json:"descripcion"`
	Beneficios        Benefits `json:"beneficios"`
	ImagenURL         string   `json:"imagen_url"`
	Precio            float64  `json:"precio"`
	Activo            Flag     `json:"activo"`
	Orden             int      `json:"orden"`
	CategoriaID       *uint    `json:"categoria_id"`
	MostrarServicios  Flag     `json:"mostrar_servicios"`
	MostrarEmpresas   Flag     `json:"mostrar_empresas"`
	CTAPrimaryLabel   *string  `json:"cta_primary_label"`
	CTAPrimaryURL     *string  `json:"cta_primary_url"`
	CTASecondaryLabel *string  `json:"cta_secondary_label"`
	CTASecondaryURL   *string  `json:"cta_secondary_url"`
}

type Category struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	ImagenURL   *string `json:"imagen_url"`
	Activo      Flag    `json:"activo"`
	Orden       int     `json:"orden"`
}

// ListServices returns every service, including hidden ones.
func (c *Client) ListServices() ([]Service, error) {
	var services []Service
	if err := c.do(http.MethodGet, "/servicios", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) ListCategories() ([]Category, error) {
	var categories []Category
	if err := c.do(http.MethodGet, "/categorias", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ServiceInput is a create or partial update payload. Nil fields are omitted;
// set ClearCategoria to send an explicit null categoria_id.
type ServiceInput struct {
	Nombre            *string   `json:"nombre,omitempty"`
	Etiqueta          *string   `json:"etiqueta,omitempty"`
	Subtitulo         *string   `json:"subtitulo,omitempty"`
	Descripcion       *string   `json:"descripcion,omitempty"`
	Beneficios        *[]string `json:"beneficios,omitempty"`
	ImagenURL         *string   `json:"imagen_url,omitempty"`
	Precio            *float64  `json:"precio,omitempty"`
	Activo            *bool     `json:"activo,omitempty"`
	Orden             *int      `json:"orden,omitempty"`
	CategoriaID       *uint     `json:"categoria_id,omitempty"`
	MostrarServicios  *bool     `json:"mostrar_servicios,omitempty"`
	MostrarEmpresas   *bool     `json:"mostrar_empresas,omitempty"`
	CTAPrimaryLabel   *string   `json:"cta_primary_label,omitempty"`
	CTAPrimaryURL     *string   `json:"cta_primary_url,omitempty"`
	CTASecondaryLabel *string   `json:"cta_secondary_label,omitempty"`
	CTASecondaryURL   *string   `json:"cta_secondary_url,omitempty"`
	ClearCategoria    bool      `json:"-"`
}

func (in ServiceInput) MarshalJSON() ([]byte, error) {
	type plain ServiceInput
	raw, err := json.Marshal(plain(in))
	if err != nil || !in.ClearCategoria {
		return raw, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["categoria_id"] = json.RawMessage("null")
	return json.Marshal(fields)
}

func (c *Client) CreateService(in ServiceInput) (uint, error) {
	if in.Nombre == nil || *in.Nombre == "" {
		return 0, invalid("nombre", "El nombre es obligatorio")
	}
	var resp struct {
		ID uint `json:"id"`
	}
	err := c.do(http.MethodPost, "/servicios", in, &resp)
	return resp.ID, err
}

func (c *Client) UpdateService(id uint, in ServiceInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/servicios/%d", id), in, nil)
}

func (c *Client) DeleteService(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/servicios/%d", id), nil, nil)
}
