package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	estructura "sistema_escolar_backend/internals/features/escuela/estructura/model"
)

// UmbralAlertaPorDefecto: % de ausencias injustificadas sobre días lectivos a
// partir del cual un estudiante entra en la lista de alertas.
const UmbralAlertaPorDefecto = 15.0

// EstudiantePadron es una fila del padrón con la etiqueta de nivel resuelta,
// lista para reportes.
type EstudiantePadron struct {
	EstudianteID    uuid.UUID `gorm:"column:estudiante_id"`
	Nombre          string    `gorm:"column:estudiante_nombre"`
	ApellidoPaterno string    `gorm:"column:estudiante_apellido_paterno"`
	ApellidoMaterno string    `gorm:"column:estudiante_apellido_materno"`
	NivelID         uuid.UUID `gorm:"column:nivel_academico_id"`
	NivelGrado      string    `gorm:"column:nivel_academico_grado"`
	NivelSeccion    string    `gorm:"column:nivel_academico_seccion"`
}

// NombreCompleto en formato "ApellidoPaterno ApellidoMaterno, Nombre" (mismo
// formato que EstudianteModel.NombreCompleto).
func (e EstudiantePadron) NombreCompleto() string {
	apellidos := strings.TrimSpace(e.ApellidoPaterno + " " + e.ApellidoMaterno)
	return apellidos + ", " + e.Nombre
}

func (e EstudiantePadron) EtiquetaNivel() string {
	return e.NivelGrado + " " + e.NivelSeccion
}

// PadronRepository resuelve padrones, niveles y matrículas. Es la vista de
// solo lectura que los agregadores tienen sobre la estructura académica.
type PadronRepository interface {
	// PadronActivo: estudiantes activos matriculados en el nivel para el año,
	// ordenados por apellido.
	PadronActivo(ctx context.Context, nivelID uuid.UUID, anio int) ([]estructura.EstudianteModel, error)

	// PadronInstitucion: padrón activo de toda la institución para el año,
	// con nivel resuelto; nivelID opcional filtra un solo nivel. Ordenado por
	// apellido.
	PadronInstitucion(ctx context.Context, institucionID uuid.UUID, anio int, nivelID *uuid.UUID) ([]EstudiantePadron, error)

	// Niveles: todos los niveles académicos de la institución.
	Niveles(ctx context.Context, institucionID uuid.UUID) ([]estructura.NivelAcademicoModel, error)

	// ContarMatriculasActivas para un nivel y año.
	ContarMatriculasActivas(ctx context.Context, nivelID uuid.UUID, anio int) (int64, error)

	// EstudianteDeInstitucion verifica que el estudiante pertenezca a la
	// institución. Las consultas por estudiante deben pasar por acá antes de
	// tocar registros: un UUID ajeno no devuelve datos de otra institución.
	EstudianteDeInstitucion(ctx context.Context, estudianteID, institucionID uuid.UUID) (bool, error)

	// PrimerCursoDeNivel: curso de alcance cuando el llamador no fija uno.
	// nil (sin error) cuando el nivel no tiene cursos.
	PrimerCursoDeNivel(ctx context.Context, nivelID uuid.UUID) (*estructura.CursoModel, error)

	// UmbralAlerta lee umbral_alerta_asistencia de la configuración de la
	// institución; cae al valor por defecto si falta o no es numérico.
	UmbralAlerta(ctx context.Context, institucionID uuid.UUID) float64
}

type padronRepository struct {
	db *gorm.DB
}

func NewPadronRepository(db *gorm.DB) PadronRepository {
	return &padronRepository{db: db}
}

func (r *padronRepository) PadronActivo(ctx context.Context, nivelID uuid.UUID, anio int) ([]estructura.EstudianteModel, error) {
	var estudiantes []estructura.EstudianteModel
	err := r.db.WithContext(ctx).
		Model(&estructura.EstudianteModel{}).
		Joins("JOIN matriculas ON matriculas.matricula_estudiante_id = estudiantes.estudiante_id").
		Where("matriculas.matricula_nivel_academico_id = ?", nivelID).
		Where("matriculas.matricula_anio_academico = ?", anio).
		Where("matriculas.matricula_estado = ?", estructura.EstadoMatriculaActiva).
		Where("matriculas.matricula_deleted_at IS NULL").
		Where("estudiantes.estudiante_estado = ?", estructura.EstadoEstudianteActivo).
		Order("estudiantes.estudiante_apellido_paterno ASC, estudiantes.estudiante_apellido_materno ASC, estudiantes.estudiante_nombre ASC").
		Find(&estudiantes).Error
	if err != nil {
		return nil, err
	}
	return estudiantes, nil
}

func (r *padronRepository) PadronInstitucion(ctx context.Context, institucionID uuid.UUID, anio int, nivelID *uuid.UUID) ([]EstudiantePadron, error) {
	q := r.db.WithContext(ctx).
		Table("estudiantes").
		Select(`estudiantes.estudiante_id,
			estudiantes.estudiante_nombre,
			estudiantes.estudiante_apellido_paterno,
			estudiantes.estudiante_apellido_materno,
			nivel_academico.nivel_academico_id,
			nivel_academico.nivel_academico_grado,
			nivel_academico.nivel_academico_seccion`).
		Joins("JOIN matriculas ON matriculas.matricula_estudiante_id = estudiantes.estudiante_id").
		Joins("JOIN nivel_academico ON nivel_academico.nivel_academico_id = matriculas.matricula_nivel_academico_id").
		// Table() no auto-filtra soft deletes: el predicado va explícito
		Where("nivel_academico.nivel_academico_deleted_at IS NULL").
		Where("estudiantes.estudiante_institucion_id = ?", institucionID).
		Where("estudiantes.estudiante_estado = ?", estructura.EstadoEstudianteActivo).
		Where("estudiantes.estudiante_deleted_at IS NULL").
		Where("matriculas.matricula_anio_academico = ?", anio).
		Where("matriculas.matricula_estado = ?", estructura.EstadoMatriculaActiva).
		Where("matriculas.matricula_deleted_at IS NULL")

	if nivelID != nil {
		q = q.Where("matriculas.matricula_nivel_academico_id = ?", *nivelID)
	}

	var padron []EstudiantePadron
	err := q.Order("estudiantes.estudiante_apellido_paterno ASC, estudiantes.estudiante_apellido_materno ASC, estudiantes.estudiante_nombre ASC").
		Scan(&padron).Error
	if err != nil {
		return nil, err
	}
	return padron, nil
}

func (r *padronRepository) Niveles(ctx context.Context, institucionID uuid.UUID) ([]estructura.NivelAcademicoModel, error) {
	var niveles []estructura.NivelAcademicoModel
	err := r.db.WithContext(ctx).
		Model(&estructura.NivelAcademicoModel{}).
		Where("nivel_academico_institucion_id = ?", institucionID).
		Order("nivel_academico_grado ASC, nivel_academico_seccion ASC").
		Find(&niveles).Error
	if err != nil {
		return nil, err
	}
	return niveles, nil
}

func (r *padronRepository) ContarMatriculasActivas(ctx context.Context, nivelID uuid.UUID, anio int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&estructura.MatriculaModel{}).
		Where("matricula_nivel_academico_id = ?", nivelID).
		Where("matricula_anio_academico = ?", anio).
		Where("matricula_estado = ?", estructura.EstadoMatriculaActiva).
		Count(&total).Error
	return total, err
}

func (r *padronRepository) EstudianteDeInstitucion(ctx context.Context, estudianteID, institucionID uuid.UUID) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&estructura.EstudianteModel{}).
		Where("estudiante_id = ?", estudianteID).
		Where("estudiante_institucion_id = ?", institucionID).
		Count(&total).Error
	return total > 0, err
}

func (r *padronRepository) PrimerCursoDeNivel(ctx context.Context, nivelID uuid.UUID) (*estructura.CursoModel, error) {
	var curso estructura.CursoModel
	err := r.db.WithContext(ctx).
		Model(&estructura.CursoModel{}).
		Where("curso_nivel_academico_id = ?", nivelID).
		Order("curso_created_at ASC").
		First(&curso).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &curso, nil
}

func (r *padronRepository) UmbralAlerta(ctx context.Context, institucionID uuid.UUID) float64 {
	var institucion estructura.InstitucionModel
	if err := r.db.WithContext(ctx).
		Where("institucion_id = ?", institucionID).
		Take(&institucion).Error; err != nil {
		return UmbralAlertaPorDefecto
	}
	if institucion.InstitucionConfiguracion == nil {
		return UmbralAlertaPorDefecto
	}
	// los números de JSONMap llegan como float64
	if v, ok := institucion.InstitucionConfiguracion["umbral_alerta_asistencia"].(float64); ok && v > 0 {
		return v
	}
	return UmbralAlertaPorDefecto
}
