package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CursoModel struct {
	CursoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:curso_id" json:"curso_id"`

	CursoInstitucionID    uuid.UUID `gorm:"type:uuid;not null;column:curso_institucion_id"     json:"curso_institucion_id"`
	CursoNivelAcademicoID uuid.UUID `gorm:"type:uuid;not null;column:curso_nivel_academico_id" json:"curso_nivel_academico_id"`

	CursoNombre string `gorm:"not null;column:curso_nombre" json:"curso_nombre"`

	CursoCreatedAt time.Time      `gorm:"column:curso_created_at;autoCreateTime" json:"curso_created_at"`
	CursoUpdatedAt *time.Time     `gorm:"column:curso_updated_at;autoUpdateTime" json:"curso_updated_at,omitempty"`
	CursoDeletedAt gorm.DeletedAt `gorm:"column:curso_deleted_at;index"          json:"curso_deleted_at,omitempty"`
}

func (CursoModel) TableName() string { return "cursos" }
