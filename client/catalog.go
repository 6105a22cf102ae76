package client

import (
	"sort"
	"strconv"
	"strings"
)

// Listing selects which public page a catalog is built for.
type Listing int

const (
	Personal Listing = iota
	Business
)

// CatalogSource tells whether the groups come from the API or the built-in default.
type CatalogSource int

const (
	Dynamic CatalogSource = iota
	StaticDefault
)

func (s CatalogSource) String() string {
	if s == StaticDefault {
		return "static"
	}
	return "dynamic"
}

type CTA struct {
	Label string
	To    string
}

type Card struct {
	Title       string
	Subtitle    string
	Description string
	Bullets     []string
	Image       string
	Primary     CTA
	Secondary   *CTA
}

type CatalogGroup struct {
	ID          string
	Name        string
	Description string
	Items       []Card
}

type Catalog struct {
	Source CatalogSource
	Groups []CatalogGroup
}

const (
	otherGroupID          = "otros"
	otherGroupName        = "Otros servicios"
	otherGroupDescription = "Opciones adicionales disponibles para agendar."
	categoryDescription   = "Selecciona la experiencia ideal para ti."
	defaultCardImage      = "/assets/services/drenaje-linfatico.jpg"
)

// Visible reports whether the service belongs on the given public listing.
func (s Service) Visible(listing Listing) bool {
	if !s.Activo.Bool() {
		return false
	}
	if listing == Business {
		return s.MostrarEmpresas.Bool()
	}
	return s.MostrarServicios.Bool()
}

// BuildCatalog groups the services visible on listing under their active
// categories, ordered by category then service orden. Services without an
// active category go to a trailing "Otros servicios" group. With no visible
// services the built-in catalog for the listing is returned.
func BuildCatalog(services []Service, categories []Category, listing Listing) Catalog {
	var visible []Service
	for _, service := range services {
		if service.Visible(listing) {
			visible = append(visible, service)
		}
	}
	if len(visible) == 0 {
		return Catalog{Source: StaticDefault, Groups: StaticCatalog(listing)}
	}

	active := make([]Category, 0, len(categories))
	for _, category := range categories {
		if category.Activo.Bool() {
			active = append(active, category)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Orden < active[j].Orden })

	known := make(map[uint]bool, len(active))
	for _, category := range active {
		known[category.ID] = true
	}
	grouped := map[uint][]Service{}
	var others []Service
	for _, service := range visible {
		if service.CategoriaID != nil && known[*service.CategoriaID] {
			grouped[*service.CategoriaID] = append(grouped[*service.CategoriaID], service)
		} else {
			others = append(others, service)
		}
	}

	var groups []CatalogGroup
	for _, category := range active {
		items := grouped[category.ID]
		if len(items) == 0 {
			continue
		}
		description := categoryDescription
		if category.Descripcion != nil {
			description = *category.Descripcion
		}
		groups = append(groups, CatalogGroup{
			ID:          strconv.FormatUint(uint64(category.ID), 10),
			Name:        category.Nombre,
			Description: description,
			Items:       cards(items, listing),
		})
	}
	if len(others) > 0 {
		groups = append(groups, CatalogGroup{
			ID:          otherGroupID,
			Name:        otherGroupName,
			Description: otherGroupDescription,
			Items:       cards(others, listing),
		})
	}
	return Catalog{Source: Dynamic, Groups: groups}
}

func cards(services []Service, listing Listing) []Card {
	sort.SliceStable(services, func(i, j int) bool { return services[i].Orden < services[j].Orden })
	out := make([]Card, 0, len(services))
	for _, service := range services {
		out = append(out, ServiceCard(service, listing))
	}
	return out
}

func firstNonBlank(value *string, fallback string) string {
	if value != nil {
		if trimmed := strings.TrimSpace(*value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

// ServiceCard renders a service with the listing's default calls to action.
func ServiceCard(service Service, listing Listing) Card {
	primary := CTA{Label: "Agendar", To: "/contacto"}
	secondary := CTA{Label: "Ver disponibilidad", To: "/contacto"}
	if listing == Business {
		primary = CTA{Label: "Cotizar ahora", To: "/empresas"}
		secondary = CTA{Label: "Hablar por WhatsApp", To: "/contacto"}
	}
	primary.Label = firstNonBlank(service.CTAPrimaryLabel, primary.Label)
	primary.To = firstNonBlank(service.CTAPrimaryURL, primary.To)
	secondary.Label = firstNonBlank(service.CTASecondaryLabel, secondary.Label)
	secondary.To = firstNonBlank(service.CTASecondaryURL, secondary.To)

	image := service.ImagenURL
	if image == "" {
		image = defaultCardImage
	}
	bullets := []string(service.Beneficios)
	if bullets == nil {
		bullets = []string{}
	}
	return Card{
		Title:       firstNonBlank(service.Etiqueta, "Servicio"),
		Subtitle:    firstNonBlank(service.Subtitulo, service.Nombre),
		Description: service.Descripcion,
		Bullets:     bullets,
		Image:       image,
		Primary:     primary,
		Secondary:   &secondary,
	}
}
