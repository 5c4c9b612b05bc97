package dto

import (
	"github.com/google/uuid"

	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
)

/* =========================================================
 * MATRIZ MENSUAL
 * ========================================================= */

// Conteos por estado derivado; mutuamente excluyentes por construcción.
type ConteoEstados struct {
	Presentes    int `json:"presentes"`
	Ausentes     int `json:"ausentes"`
	Tardanzas    int `json:"tardanzas"`
	Justificados int `json:"justificados"`
}

type FilaMatrizEstudiante struct {
	EstudianteID   uuid.UUID `json:"estudiante_id"`
	NombreCompleto string    `json:"nombre_completo"`

	// Estados[i] = estado del día i+1; nil = sin dato (se pinta "-").
	Estados []*model.EstadoAsistencia `json:"estados"`

	Conteos ConteoEstados `json:"conteos"`
}

type MatrizMensualResponse struct {
	NivelAcademicoID uuid.UUID `json:"nivel_academico_id"`
	CursoID          uuid.UUID `json:"curso_id"` // curso de alcance efectivo
	Mes              int       `json:"mes"`      // 0-based
	Anio             int       `json:"anio"`
	DiasDelMes       int       `json:"dias_del_mes"`

	Estudiantes []FilaMatrizEstudiante `json:"estudiantes"`
}

/* =========================================================
 * ALERTAS DE RIESGO
 * ========================================================= */

type AlertaRiesgoResponse struct {
	EstudianteID            uuid.UUID `json:"estudiante_id"`
	NombreCompleto          string    `json:"nombre_completo"`
	NivelAcademico          string    `json:"nivel_academico"`
	AusenciasInjustificadas int64     `json:"ausencias_injustificadas"`
	DiasLectivos            int64     `json:"dias_lectivos"`
	PorcentajeAusencia      float64   `json:"porcentaje_ausencia"` // redondeado a 2 decimales
}

/* =========================================================
 * RESUMEN INSTITUCIONAL (un día, todos los niveles)
 * ========================================================= */

type ResumenNivelResponse struct {
	NivelAcademicoID uuid.UUID `json:"nivel_academico_id"`
	NivelAcademico   string    `json:"nivel_academico"`

	Presentes    int64 `json:"presentes"`
	Ausentes     int64 `json:"ausentes"` // matriculados - presentes (ausencia implícita)
	Matriculados int64 `json:"matriculados"`
}

type ResumenInstitucionalResponse struct {
	Fecha   string                 `json:"fecha"`
	Niveles []ResumenNivelResponse `json:"niveles"`
}

/* =========================================================
 * TENDENCIA ANUAL (12 buckets fijos)
 * ========================================================= */

type TendenciaMensual struct {
	Mes          int `json:"mes"` // 0..11
	Presentes    int `json:"presentes"`
	Ausentes     int `json:"ausentes"`
	Tardanzas    int `json:"tardanzas"`
	Justificados int `json:"justificados"`
}

type TendenciaAnualResponse struct {
	EstudianteID uuid.UUID          `json:"estudiante_id"`
	Anio         int                `json:"anio"`
	Meses        []TendenciaMensual `json:"meses"` // siempre 12, en orden 0..11
}

/* =========================================================
 * JUSTIFICACIONES
 * ========================================================= */

type JustificacionResponse struct {
	AsistenciaID   uuid.UUID `json:"asistencia_id"`
	EstudianteID   uuid.UUID `json:"estudiante_id"`
	NombreCompleto string    `json:"nombre_completo"`
	NivelAcademico string    `json:"nivel_academico"`
	Fecha          string    `json:"fecha"`
	Justificacion  string    `json:"justificacion"` // "Sin detalle" si no se registró texto
}
