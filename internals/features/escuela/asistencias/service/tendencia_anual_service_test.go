package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
)

// Siempre 12 buckets en orden 0..11, incluso sin ningún registro.
func TestTendenciaAnual_DoceBucketsSiempre(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewTendenciaAnualService(asistencias, padronRepo)

	esc := contextoDePrueba()
	estudianteID := uuid.New()
	padronRepo.On("EstudianteDeInstitucion", mock.Anything, estudianteID, esc.InstitucionID).
		Return(true, nil)
	asistencias.On("BuscarRegistros", mock.Anything, mock.Anything).
		Return([]model.AsistenciaModel{}, nil)

	tendencia, err := svc.Calcular(context.Background(), esc, estudianteID, 2024)
	require.NoError(t, err)

	assert.Equal(t, estudianteID, tendencia.EstudianteID)
	assert.Equal(t, 2024, tendencia.Anio)
	require.Len(t, tendencia.Meses, 12)
	for i, mes := range tendencia.Meses {
		assert.Equal(t, i, mes.Mes)
		assert.Zero(t, mes.Presentes)
		assert.Zero(t, mes.Ausentes)
		assert.Zero(t, mes.Tardanzas)
		assert.Zero(t, mes.Justificados)
	}
}

func TestTendenciaAnual_BucketsPorMes(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewTendenciaAnualService(asistencias, padronRepo)

	esc := contextoDePrueba()
	estudianteID := uuid.New()
	registro := func(mes time.Month, dia int, presente, tardanza, justificada bool) model.AsistenciaModel {
		return model.AsistenciaModel{
			AsistenciaEstudianteID: estudianteID,
			AsistenciaFecha:        time.Date(2024, mes, dia, 0, 0, 0, 0, time.UTC),
			AsistenciaPresente:     presente,
			AsistenciaTardanza:     tardanza,
			AsistenciaJustificada:  justificada,
		}
	}

	padronRepo.On("EstudianteDeInstitucion", mock.Anything, estudianteID, esc.InstitucionID).
		Return(true, nil)
	asistencias.On("BuscarRegistros", mock.Anything, mock.Anything).
		Return([]model.AsistenciaModel{
			// marzo: 2 presentes, 1 ausente
			registro(time.March, 1, true, false, false),
			registro(time.March, 4, true, false, false),
			registro(time.March, 5, false, false, false),
			// marzo: tardanza gana sobre justificada
			registro(time.March, 6, false, true, true),
			// agosto: 1 justificado
			registro(time.August, 12, false, false, true),
		}, nil)

	tendencia, err := svc.Calcular(context.Background(), esc, estudianteID, 2024)
	require.NoError(t, err)

	marzo := tendencia.Meses[2]
	assert.Equal(t, 2, marzo.Presentes)
	assert.Equal(t, 1, marzo.Ausentes)
	assert.Equal(t, 1, marzo.Tardanzas)
	assert.Equal(t, 0, marzo.Justificados)

	agosto := tendencia.Meses[7]
	assert.Equal(t, 1, agosto.Justificados)

	// el resto queda en cero
	for _, i := range []int{0, 1, 3, 4, 5, 6, 8, 9, 10, 11} {
		mes := tendencia.Meses[i]
		assert.Zero(t, mes.Presentes+mes.Ausentes+mes.Tardanzas+mes.Justificados, "mes %d", i)
	}
}

// Un estudiante de otra institución responde los 12 buckets en cero; sus
// registros nunca se consultan.
func TestTendenciaAnual_EstudianteDeOtraInstitucion(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewTendenciaAnualService(asistencias, padronRepo)

	esc := contextoDePrueba()
	ajeno := uuid.New()
	padronRepo.On("EstudianteDeInstitucion", mock.Anything, ajeno, esc.InstitucionID).
		Return(false, nil)

	tendencia, err := svc.Calcular(context.Background(), esc, ajeno, 2024)
	require.NoError(t, err)

	require.Len(t, tendencia.Meses, 12)
	for _, mes := range tendencia.Meses {
		assert.Zero(t, mes.Presentes+mes.Ausentes+mes.Tardanzas+mes.Justificados)
	}
	asistencias.AssertNotCalled(t, "BuscarRegistros", mock.Anything, mock.Anything)
}

func TestTendenciaAnual_FallaDelStore(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewTendenciaAnualService(asistencias, padronRepo)

	esc := contextoDePrueba()
	estudianteID := uuid.New()
	padronRepo.On("EstudianteDeInstitucion", mock.Anything, estudianteID, esc.InstitucionID).
		Return(true, nil)
	asistencias.On("BuscarRegistros", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	tendencia, err := svc.Calcular(context.Background(), esc, estudianteID, 2024)
	assert.Error(t, err)
	assert.Nil(t, tendencia)
}
