package models

import (
	"time"
)

type Service struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Nombre            string    `json:"nombre" gorm:"size:160;not null"`
	Etiqueta          *string   `json:"etiqueta" gorm:"size:80"`
	Subtitulo         *string   `json:"subtitulo" gorm:"size:160"`
	Descripcion       string    `json:"descripcion" gorm:"type:text"`
	Beneficios        Benefits  `json:"beneficios" gorm:"type:text"`
	ImagenURL         string    `json:"imagen_url" gorm:"size:512"`
	Precio            float64   `json:"precio"`
	Activo            bool      `json:"activo" gorm:"not null"`
	Orden             int       `json:"orden" gorm:"default:0"`
	CategoriaID       *uint     `json:"categoria_id" gorm:"index"`
	MostrarServicios  bool      `json:"mostrar_servicios" gorm:"default:false"`
	MostrarEmpresas   bool      `json:"mostrar_empresas" gorm:"default:false"`
	CTAPrimaryLabel   *string   `json:"cta_primary_label" gorm:"size:80"`
	CTAPrimaryURL     *string   `json:"cta_primary_url" gorm:"size:255"`
	CTASecondaryLabel *string   `json:"cta_secondary_label" gorm:"size:80"`
	CTASecondaryURL   *string   `json:"cta_secondary_url" gorm:"size:255"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

func (Service) TableName() string { return "servicios" }

type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Nombre      string  `json:"nombre" gorm:"size:120;not null"`
	Descripcion *string `json:"descripcion" gorm:"type:text"`
	ImagenURL   *string `json:"imagen_url" gorm:"size:512"`
	Activo      bool    `json:"activo" gorm:"not null"`
	Orden       int     `json:"orden" gorm:"default:0"`
}

func (Category) TableName() string { return "categorias" }
