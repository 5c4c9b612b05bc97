package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
)

type RangoFechas struct {
	Desde time.Time
	Hasta time.Time
}

type FiltroRegistros struct {
	EstudianteIDs    []uuid.UUID
	CursoID          *uuid.UUID
	Rango            RangoFechas
	SoloJustificadas bool
	Presente         *bool
}

// AsistenciaRepository es la capa de acceso a los registros crudos de
// asistencia. Los servicios de agregación dependen de esta interfaz, no de
// GORM, para poder probarse con mocks.
type AsistenciaRepository interface {
	// BuscarRegistros devuelve los registros que calzan con el filtro,
	// ordenados por fecha ascendente.
	BuscarRegistros(ctx context.Context, f FiltroRegistros) ([]model.AsistenciaModel, error)

	// GuardarRegistro upserta de forma atómica sobre la clave única
	// (estudiante, curso, fecha): INSERT ... ON CONFLICT DO UPDATE.
	// Última escritura gana; no hay ventana de lectura previa.
	GuardarRegistro(ctx context.Context, m *model.AsistenciaModel) error

	// ContarFechasConRegistros cuenta las fechas calendario distintas con al
	// menos un registro en el rango (proxy de "días lectivos transcurridos").
	ContarFechasConRegistros(ctx context.Context, r RangoFechas) (int64, error)

	// ContarAusenciasInjustificadas cuenta por estudiante los registros con
	// presente=false y justificada=false dentro del rango.
	ContarAusenciasInjustificadas(ctx context.Context, estudianteIDs []uuid.UUID, r RangoFechas) (map[uuid.UUID]int64, error)

	// ContarPresentesPorNivel cuenta estudiantes con matrícula activa del año
	// en el nivel y al menos un registro presente=true en el día. El año acota
	// la matrícula al mismo padrón que el denominador de matriculados.
	ContarPresentesPorNivel(ctx context.Context, nivelID uuid.UUID, anio int, dia RangoFechas) (int64, error)
}

type asistenciaRepository struct {
	db *gorm.DB
}

func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository {
	return &asistenciaRepository{db: db}
}

func (r *asistenciaRepository) BuscarRegistros(ctx context.Context, f FiltroRegistros) ([]model.AsistenciaModel, error) {
	q := r.db.WithContext(ctx).
		Model(&model.AsistenciaModel{}).
		Where("asistencia_fecha BETWEEN ? AND ?", f.Rango.Desde, f.Rango.Hasta)

	if len(f.EstudianteIDs) > 0 {
		q = q.Where("asistencia_estudiante_id IN ?", f.EstudianteIDs)
	}
	if f.CursoID != nil {
		q = q.Where("asistencia_curso_id = ?", *f.CursoID)
	}
	if f.SoloJustificadas {
		q = q.Where("asistencia_justificada = TRUE")
	}
	if f.Presente != nil {
		q = q.Where("asistencia_presente = ?", *f.Presente)
	}

	var registros []model.AsistenciaModel
	if err := q.Order("asistencia_fecha ASC").Find(&registros).Error; err != nil {
		return nil, err
	}
	return registros, nil
}

func (r *asistenciaRepository) GuardarRegistro(ctx context.Context, m *model.AsistenciaModel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "asistencia_estudiante_id"},
				{Name: "asistencia_curso_id"},
				{Name: "asistencia_fecha"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"asistencia_presente",
				"asistencia_tardanza",
				"asistencia_justificada",
				"asistencia_justificacion",
				"asistencia_updated_at",
			}),
		}).
		Create(m).Error
}

func (r *asistenciaRepository) ContarFechasConRegistros(ctx context.Context, rango RangoFechas) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.AsistenciaModel{}).
		Where("asistencia_fecha BETWEEN ? AND ?", rango.Desde, rango.Hasta).
		Distinct("asistencia_fecha").
		Count(&total).Error
	return total, err
}

func (r *asistenciaRepository) ContarAusenciasInjustificadas(ctx context.Context, estudianteIDs []uuid.UUID, rango RangoFechas) (map[uuid.UUID]int64, error) {
	conteos := make(map[uuid.UUID]int64, len(estudianteIDs))
	if len(estudianteIDs) == 0 {
		return conteos, nil
	}

	ids := make([]string, 0, len(estudianteIDs))
	for _, id := range estudianteIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT asistencia_estudiante_id, COUNT(*) AS total
		FROM asistencias
		WHERE asistencia_estudiante_id = ANY(?)
		  AND asistencia_fecha BETWEEN ? AND ?
		  AND asistencia_presente = FALSE
		  AND asistencia_justificada = FALSE
		GROUP BY asistencia_estudiante_id`,
		pq.Array(ids), rango.Desde, rango.Hasta,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var estudianteID uuid.UUID
		var total int64
		if err := rows.Scan(&estudianteID, &total); err != nil {
			return nil, err
		}
		conteos[estudianteID] = total
	}
	return conteos, rows.Err()
}

func (r *asistenciaRepository) ContarPresentesPorNivel(ctx context.Context, nivelID uuid.UUID, anio int, dia RangoFechas) (int64, error) {
	var total int64
	// un estudiante puede tener varios cursos el mismo día: se cuenta una sola vez
	err := r.db.WithContext(ctx).
		Model(&model.AsistenciaModel{}).
		Joins("JOIN matriculas ON matriculas.matricula_estudiante_id = asistencias.asistencia_estudiante_id").
		Where("matriculas.matricula_nivel_academico_id = ?", nivelID).
		Where("matriculas.matricula_anio_academico = ?", anio).
		Where("matriculas.matricula_estado = ?", "activo").
		Where("matriculas.matricula_deleted_at IS NULL").
		Where("asistencias.asistencia_fecha BETWEEN ? AND ?", dia.Desde, dia.Hasta).
		Where("asistencias.asistencia_presente = TRUE").
		Distinct("asistencias.asistencia_estudiante_id").
		Count(&total).Error
	return total, err
}
