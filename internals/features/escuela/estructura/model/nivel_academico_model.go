package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NivelAcademicoModel struct {
	NivelAcademicoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:nivel_academico_id" json:"nivel_academico_id"`

	NivelAcademicoInstitucionID uuid.UUID `gorm:"type:uuid;not null;column:nivel_academico_institucion_id" json:"nivel_academico_institucion_id"`

	// Ej: grado = "3ro", seccion = "B"
	NivelAcademicoGrado   string `gorm:"not null;column:nivel_academico_grado"   json:"nivel_academico_grado"`
	NivelAcademicoSeccion string `gorm:"not null;column:nivel_academico_seccion" json:"nivel_academico_seccion"`

	NivelAcademicoCreatedAt time.Time      `gorm:"column:nivel_academico_created_at;autoCreateTime" json:"nivel_academico_created_at"`
	NivelAcademicoUpdatedAt *time.Time     `gorm:"column:nivel_academico_updated_at;autoUpdateTime" json:"nivel_academico_updated_at,omitempty"`
	NivelAcademicoDeletedAt gorm.DeletedAt `gorm:"column:nivel_academico_deleted_at;index"          json:"nivel_academico_deleted_at,omitempty"`
}

func (NivelAcademicoModel) TableName() string { return "nivel_academico" }

// Etiqueta legible para reportes: "3ro B"
func (m NivelAcademicoModel) Etiqueta() string {
	return m.NivelAcademicoGrado + " " + m.NivelAcademicoSeccion
}
