package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InstitucionModel struct {
	InstitucionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:institucion_id" json:"institucion_id"`

	InstitucionNombre string `gorm:"not null;column:institucion_nombre" json:"institucion_nombre"`

	// Configuración flexible por institución (ej. umbral_alerta_asistencia)
	InstitucionConfiguracion datatypes.JSONMap `gorm:"column:institucion_configuracion" json:"institucion_configuracion,omitempty"`

	InstitucionCreatedAt time.Time  `gorm:"column:institucion_created_at;autoCreateTime" json:"institucion_created_at"`
	InstitucionUpdatedAt *time.Time `gorm:"column:institucion_updated_at;autoUpdateTime" json:"institucion_updated_at,omitempty"`
}

func (InstitucionModel) TableName() string { return "instituciones" }
