package models

import (
	"time"
)

// HomeContent is one hero entry of the home page.
type HomeContent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Titulo        string    `json:"titulo" gorm:"size:200;not null"`
	Subtitulo     string    `json:"subtitulo" gorm:"type:text"`
	ImagenURL     string    `json:"imagen_url" gorm:"size:512"`
	VideoEmbed    *string   `json:"video_embed" gorm:"type:text"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"autoUpdateTime"`
}

func (HomeContent) TableName() string { return "home_content" }

type InstagramPost struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	EmbedURL      string    `json:"embed_url" gorm:"size:512;not null"`
	Activo        bool      `json:"activo" gorm:"not null"`
	Orden         int       `json:"orden"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"autoUpdateTime"`
}

func (InstagramPost) TableName() string { return "instagram_posts" }
