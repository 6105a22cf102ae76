package client

import (
	"fmt"
	"net/http"
)

type HomeContent struct {
	ID            uint    `json:"id"`
	Titulo        string  `json:"titulo"`
	Subtitulo     string  `json:"subtitulo"`
	ImagenURL     string  `json:"imagen_url"`
	VideoEmbed    *string `json:"video_embed"`
	ActualizadoEn *string `json:"actualizado_en"`
}

type HomeContentInput struct {
	Titulo     *string `json:"titulo,omitempty"`
	Subtitulo  *string `json:"subtitulo,omitempty"`
	ImagenURL  *string `json:"imagen_url,omitempty"`
	VideoEmbed *string `json:"video_embed,omitempty"`
}

func (c *Client) ListHomeContent() ([]HomeContent, error) {
	var items []HomeContent
	if err := c.do(http.MethodGet, "/home-content", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateHomeContent(in HomeContentInput) (uint, error) {
	var resp struct {
		ID uint `json:"id"`
	}
	err := c.do(http.MethodPost, "/home-content", in, &resp)
	return resp.ID, err
}

func (c *Client) UpdateHomeContent(id uint, in HomeContentInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/home-content?id=%d", id), in, nil)
}

func (c *Client) DeleteHomeContent(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/home-content?id=%d", id), nil, nil)
}

type InstagramPost struct {
	ID            uint    `json:"id"`
	EmbedURL      string  `json:"embed_url"`
	Activo        Flag    `json:"activo"`
	Orden         int     `json:"orden"`
	ActualizadoEn *string `json:"actualizado_en"`
}

type InstagramInput struct {
	EmbedURL *string `json:"embed_url,omitempty"`
	Activo   *bool   `json:"activo,omitempty"`
	Orden    *int    `json:"orden,omitempty"`
}

func (c *Client) ListInstagramPosts() ([]InstagramPost, error) {
	var posts []InstagramPost
	if err := c.do(http.MethodGet, "/instagram", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// VisibleInstagramPosts keeps the active posts for the public feed.
func VisibleInstagramPosts(posts []InstagramPost) []InstagramPost {
	visible := make([]InstagramPost, 0, len(posts))
	for _, post := range posts {
		if post.Activo.Bool() {
			visible = append(visible, post)
		}
	}
	return visible
}

func (c *Client) CreateInstagramPost(in InstagramInput) (uint, error) {
	var resp struct {
		ID uint `json:"id"`
	}
	err := c.do(http.MethodPost, "/instagram", in, &resp)
	return resp.ID, err
}

func (c *Client) UpdateInstagramPost(id uint, in InstagramInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/instagram?id=%d", id), in, nil)
}

func (c *Client) DeleteInstagramPost(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/instagram?id=%d", id), nil, nil)
}

type TopServicio struct {
	ServicioID     uint   `json:"servicio_id"`
	ServicioNombre string `json:"servicio_nombre"`
	TotalCitas     int    `json:"total_citas"`
}

type DashboardOverview struct {
	TotalCitas      int           `json:"total_citas"`
	CitasHoy        int           `json:"citas_hoy"`
	Clientes        int           `json:"clientes"`
	Servicios       int           `json:"servicios"`
	TopServicios30d []TopServicio `json:"top_servicios_30d"`
}

func (c *Client) GetDashboardOverview() (DashboardOverview, error) {
	var overview DashboardOverview
	err := c.do(http.MethodGet, "/dashboard/overview", nil, &overview)
	return overview, err
}

func (c *Client) GetDashboardCitasHoy() ([]AdminCita, error) {
	var citas []AdminCita
	err := c.do(http.MethodGet, "/dashboard/citas-hoy", nil, &citas)
	return citas, err
}

func (c *Client) GetDashboardTopServicios() ([]TopServicio, error) {
	var top []TopServicio
	err := c.do(http.MethodGet, "/dashboard/top-servicios", nil, &top)
	return top, err
}
