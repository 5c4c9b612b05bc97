package model

import (
	"time"

	"github.com/google/uuid"
)

// AsistenciaModel: un registro por (estudiante, curso, día calendario).
// El registro se upserta desde la toma de asistencia; los agregadores solo leen.
type AsistenciaModel struct {
	AsistenciaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:asistencia_id" json:"asistencia_id"`

	AsistenciaEstudianteID uuid.UUID `gorm:"type:uuid;not null;column:asistencia_estudiante_id;uniqueIndex:uq_asistencia_estudiante_curso_fecha" json:"asistencia_estudiante_id"`
	AsistenciaCursoID      uuid.UUID `gorm:"type:uuid;not null;column:asistencia_curso_id;uniqueIndex:uq_asistencia_estudiante_curso_fecha"      json:"asistencia_curso_id"`

	AsistenciaFecha time.Time `gorm:"type:date;not null;column:asistencia_fecha;uniqueIndex:uq_asistencia_estudiante_curso_fecha" json:"asistencia_fecha"`

	AsistenciaPresente    bool `gorm:"not null;default:false;column:asistencia_presente"    json:"asistencia_presente"`
	AsistenciaTardanza    bool `gorm:"not null;default:false;column:asistencia_tardanza"    json:"asistencia_tardanza"`
	AsistenciaJustificada bool `gorm:"not null;default:false;column:asistencia_justificada" json:"asistencia_justificada"`

	AsistenciaJustificacion *string `gorm:"column:asistencia_justificacion" json:"asistencia_justificacion,omitempty"`

	AsistenciaCreatedAt time.Time  `gorm:"column:asistencia_created_at;autoCreateTime" json:"asistencia_created_at"`
	AsistenciaUpdatedAt *time.Time `gorm:"column:asistencia_updated_at;autoUpdateTime" json:"asistencia_updated_at,omitempty"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }
