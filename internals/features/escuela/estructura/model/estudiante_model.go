package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EstadoEstudianteActivo = "activo"

type EstudianteModel struct {
	EstudianteID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:estudiante_id" json:"estudiante_id"`

	EstudianteInstitucionID uuid.UUID `gorm:"type:uuid;not null;column:estudiante_institucion_id" json:"estudiante_institucion_id"`

	EstudianteNombre          string `gorm:"not null;column:estudiante_nombre"           json:"estudiante_nombre"`
	EstudianteApellidoPaterno string `gorm:"not null;column:estudiante_apellido_paterno" json:"estudiante_apellido_paterno"`
	EstudianteApellidoMaterno string `gorm:"column:estudiante_apellido_materno"          json:"estudiante_apellido_materno"`

	// activo | retirado | egresado
	EstudianteEstado string `gorm:"not null;default:activo;column:estudiante_estado" json:"estudiante_estado"`

	EstudianteCreatedAt time.Time      `gorm:"column:estudiante_created_at;autoCreateTime" json:"estudiante_created_at"`
	EstudianteUpdatedAt *time.Time     `gorm:"column:estudiante_updated_at;autoUpdateTime" json:"estudiante_updated_at,omitempty"`
	EstudianteDeletedAt gorm.DeletedAt `gorm:"column:estudiante_deleted_at;index"          json:"estudiante_deleted_at,omitempty"`
}

func (EstudianteModel) TableName() string { return "estudiantes" }

// NombreCompleto en formato de reporte: "ApellidoPaterno ApellidoMaterno, Nombre"
func (m EstudianteModel) NombreCompleto() string {
	apellidos := strings.TrimSpace(m.EstudianteApellidoPaterno + " " + m.EstudianteApellidoMaterno)
	return apellidos + ", " + m.EstudianteNombre
}
