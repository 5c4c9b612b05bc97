package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	estructura "sistema_escolar_backend/internals/features/escuela/estructura/model"
)

// MockAsistenciaRepository es el mock de AsistenciaRepository
type MockAsistenciaRepository struct {
	mock.Mock
}

func (m *MockAsistenciaRepository) BuscarRegistros(ctx context.Context, f repository.FiltroRegistros) ([]model.AsistenciaModel, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AsistenciaModel), args.Error(1)
}

func (m *MockAsistenciaRepository) GuardarRegistro(ctx context.Context, r *model.AsistenciaModel) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAsistenciaRepository) ContarFechasConRegistros(ctx context.Context, r repository.RangoFechas) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAsistenciaRepository) ContarAusenciasInjustificadas(ctx context.Context, estudianteIDs []uuid.UUID, r repository.RangoFechas) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, estudianteIDs, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockAsistenciaRepository) ContarPresentesPorNivel(ctx context.Context, nivelID uuid.UUID, anio int, dia repository.RangoFechas) (int64, error) {
	args := m.Called(ctx, nivelID, anio, dia)
	return args.Get(0).(int64), args.Error(1)
}

// MockPadronRepository es el mock de PadronRepository
type MockPadronRepository struct {
	mock.Mock
}

func (m *MockPadronRepository) PadronActivo(ctx context.Context, nivelID uuid.UUID, anio int) ([]estructura.EstudianteModel, error) {
	args := m.Called(ctx, nivelID, anio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]estructura.EstudianteModel), args.Error(1)
}

func (m *MockPadronRepository) PadronInstitucion(ctx context.Context, institucionID uuid.UUID, anio int, nivelID *uuid.UUID) ([]repository.EstudiantePadron, error) {
	args := m.Called(ctx, institucionID, anio, nivelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EstudiantePadron), args.Error(1)
}

func (m *MockPadronRepository) Niveles(ctx context.Context, institucionID uuid.UUID) ([]estructura.NivelAcademicoModel, error) {
	args := m.Called(ctx, institucionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]estructura.NivelAcademicoModel), args.Error(1)
}

func (m *MockPadronRepository) ContarMatriculasActivas(ctx context.Context, nivelID uuid.UUID, anio int) (int64, error) {
	args := m.Called(ctx, nivelID, anio)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPadronRepository) EstudianteDeInstitucion(ctx context.Context, estudianteID, institucionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, estudianteID, institucionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPadronRepository) PrimerCursoDeNivel(ctx context.Context, nivelID uuid.UUID) (*estructura.CursoModel, error) {
	args := m.Called(ctx, nivelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estructura.CursoModel), args.Error(1)
}

func (m *MockPadronRepository) UmbralAlerta(ctx context.Context, institucionID uuid.UUID) float64 {
	args := m.Called(ctx, institucionID)
	return args.Get(0).(float64)
}
