package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EstadoMatriculaActiva = "activo"

type MatriculaModel struct {
	MatriculaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:matricula_id" json:"matricula_id"`

	MatriculaEstudianteID     uuid.UUID `gorm:"type:uuid;not null;column:matricula_estudiante_id;uniqueIndex:uq_matricula_estudiante_anio" json:"matricula_estudiante_id"`
	MatriculaNivelAcademicoID uuid.UUID `gorm:"type:uuid;not null;column:matricula_nivel_academico_id" json:"matricula_nivel_academico_id"`

	MatriculaAnioAcademico int `gorm:"not null;column:matricula_anio_academico;uniqueIndex:uq_matricula_estudiante_anio" json:"matricula_anio_academico"`

	// activo | retirado | trasladado
	MatriculaEstado string `gorm:"not null;default:activo;column:matricula_estado" json:"matricula_estado"`

	MatriculaCreatedAt time.Time      `gorm:"column:matricula_created_at;autoCreateTime" json:"matricula_created_at"`
	MatriculaUpdatedAt *time.Time     `gorm:"column:matricula_updated_at;autoUpdateTime" json:"matricula_updated_at,omitempty"`
	MatriculaDeletedAt gorm.DeletedAt `gorm:"column:matricula_deleted_at;index"          json:"matricula_deleted_at,omitempty"`
}

func (MatriculaModel) TableName() string { return "matriculas" }
