package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Registro/actualización de asistencia (upsert por estudiante+curso+fecha)
type RegistrarAsistenciaRequest struct {
	AsistenciaEstudianteID uuid.UUID `json:"asistencia_estudiante_id" validate:"required"`
	AsistenciaCursoID      uuid.UUID `json:"asistencia_curso_id"      validate:"required"`

	// Fecha calendario, formato YYYY-MM-DD
	AsistenciaFecha string `json:"asistencia_fecha" validate:"required,datetime=2006-01-02"`

	AsistenciaPresente    bool `json:"asistencia_presente"`
	AsistenciaTardanza    bool `json:"asistencia_tardanza"`
	AsistenciaJustificada bool `json:"asistencia_justificada"`

	AsistenciaJustificacion *string `json:"asistencia_justificacion" validate:"omitempty,max=500"`
}

func (r RegistrarAsistenciaRequest) ToModel() (*model.AsistenciaModel, error) {
	fecha, err := time.ParseInLocation("2006-01-02", r.AsistenciaFecha, time.UTC)
	if err != nil {
		return nil, err
	}

	var justificacion *string
	if r.AsistenciaJustificacion != nil {
		if s := strings.TrimSpace(*r.AsistenciaJustificacion); s != "" {
			justificacion = &s
		}
	}

	return &model.AsistenciaModel{
		AsistenciaEstudianteID:  r.AsistenciaEstudianteID,
		AsistenciaCursoID:       r.AsistenciaCursoID,
		AsistenciaFecha:         fecha,
		AsistenciaPresente:      r.AsistenciaPresente,
		AsistenciaTardanza:      r.AsistenciaTardanza,
		AsistenciaJustificada:   r.AsistenciaJustificada,
		AsistenciaJustificacion: justificacion,
	}, nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AsistenciaResponse struct {
	AsistenciaID            uuid.UUID              `json:"asistencia_id"`
	AsistenciaEstudianteID  uuid.UUID              `json:"asistencia_estudiante_id"`
	AsistenciaCursoID       uuid.UUID              `json:"asistencia_curso_id"`
	AsistenciaFecha         string                 `json:"asistencia_fecha"`
	AsistenciaEstado        model.EstadoAsistencia `json:"asistencia_estado"`
	AsistenciaPresente      bool                   `json:"asistencia_presente"`
	AsistenciaTardanza      bool                   `json:"asistencia_tardanza"`
	AsistenciaJustificada   bool                   `json:"asistencia_justificada"`
	AsistenciaJustificacion *string                `json:"asistencia_justificacion,omitempty"`
}

func FromModel(m model.AsistenciaModel) AsistenciaResponse {
	return AsistenciaResponse{
		AsistenciaID:            m.AsistenciaID,
		AsistenciaEstudianteID:  m.AsistenciaEstudianteID,
		AsistenciaCursoID:       m.AsistenciaCursoID,
		AsistenciaFecha:         m.AsistenciaFecha.Format("2006-01-02"),
		AsistenciaEstado:        m.Estado(),
		AsistenciaPresente:      m.AsistenciaPresente,
		AsistenciaTardanza:      m.AsistenciaTardanza,
		AsistenciaJustificada:   m.AsistenciaJustificada,
		AsistenciaJustificacion: m.AsistenciaJustificacion,
	}
}
