package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	estructura "sistema_escolar_backend/internals/features/escuela/estructura/model"
)

func nivelDePrueba(grado, seccion string) estructura.NivelAcademicoModel {
	return estructura.NivelAcademicoModel{
		NivelAcademicoID:      uuid.New(),
		NivelAcademicoGrado:   grado,
		NivelAcademicoSeccion: seccion,
	}
}

// Un nivel con 10 matriculados y 7 presentes → {presentes:7, ausentes:3}.
// El ausente aquí es implícito (matriculados - presentes): sin registro ese
// día cuenta como ausente, a diferencia de la matriz mensual.
func TestResumenInstitucional_AusenciaImplicita(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewResumenInstitucionalService(asistencias, padronRepo)

	esc := contextoDePrueba()
	nivel := nivelDePrueba("3ro", "B")
	fecha := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	padronRepo.On("Niveles", mock.Anything, esc.InstitucionID).
		Return([]estructura.NivelAcademicoModel{nivel}, nil)
	asistencias.On("ContarPresentesPorNivel", mock.Anything, nivel.NivelAcademicoID, esc.AnioAcademico, mock.Anything).
		Return(int64(7), nil)
	padronRepo.On("ContarMatriculasActivas", mock.Anything, nivel.NivelAcademicoID, esc.AnioAcademico).
		Return(int64(10), nil)

	resumen, err := svc.Resumir(context.Background(), esc, fecha)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", resumen.Fecha)
	require.Len(t, resumen.Niveles, 1)
	assert.Equal(t, int64(7), resumen.Niveles[0].Presentes)
	assert.Equal(t, int64(3), resumen.Niveles[0].Ausentes)
	assert.Equal(t, int64(10), resumen.Niveles[0].Matriculados)
	assert.Equal(t, "3ro B", resumen.Niveles[0].NivelAcademico)
}

// El fan-out por nivel no altera el orden de la respuesta.
func TestResumenInstitucional_OrdenEstable(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewResumenInstitucionalService(asistencias, padronRepo)

	esc := contextoDePrueba()
	niveles := []estructura.NivelAcademicoModel{
		nivelDePrueba("1ro", "A"),
		nivelDePrueba("2do", "A"),
		nivelDePrueba("3ro", "A"),
		nivelDePrueba("4to", "A"),
	}

	padronRepo.On("Niveles", mock.Anything, esc.InstitucionID).Return(niveles, nil)
	for i, nivel := range niveles {
		asistencias.On("ContarPresentesPorNivel", mock.Anything, nivel.NivelAcademicoID, esc.AnioAcademico, mock.Anything).
			Return(int64(i), nil)
		padronRepo.On("ContarMatriculasActivas", mock.Anything, nivel.NivelAcademicoID, esc.AnioAcademico).
			Return(int64(30), nil)
	}

	resumen, err := svc.Resumir(context.Background(), esc, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, resumen.Niveles, 4)
	for i, nivel := range niveles {
		assert.Equal(t, nivel.NivelAcademicoID, resumen.Niveles[i].NivelAcademicoID)
		assert.Equal(t, int64(i), resumen.Niveles[i].Presentes)
		assert.Equal(t, int64(30-i), resumen.Niveles[i].Ausentes)
	}
}

func TestResumenInstitucional_SinNiveles(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewResumenInstitucionalService(asistencias, padronRepo)

	esc := contextoDePrueba()
	padronRepo.On("Niveles", mock.Anything, esc.InstitucionID).
		Return([]estructura.NivelAcademicoModel{}, nil)

	resumen, err := svc.Resumir(context.Background(), esc, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, resumen.Niveles) // vacío explícito, no error
}

// Si falla un solo nivel no se devuelve nada (todo o nada).
func TestResumenInstitucional_SinResultadosParciales(t *testing.T) {
	asistencias := new(MockAsistenciaRepository)
	padronRepo := new(MockPadronRepository)
	svc := NewResumenInstitucionalService(asistencias, padronRepo)

	esc := contextoDePrueba()
	sano := nivelDePrueba("1ro", "A")
	roto := nivelDePrueba("2do", "A")

	padronRepo.On("Niveles", mock.Anything, esc.InstitucionID).
		Return([]estructura.NivelAcademicoModel{sano, roto}, nil)
	asistencias.On("ContarPresentesPorNivel", mock.Anything, sano.NivelAcademicoID, esc.AnioAcademico, mock.Anything).
		Return(int64(5), nil)
	padronRepo.On("ContarMatriculasActivas", mock.Anything, sano.NivelAcademicoID, esc.AnioAcademico).
		Return(int64(10), nil)
	asistencias.On("ContarPresentesPorNivel", mock.Anything, roto.NivelAcademicoID, esc.AnioAcademico, mock.Anything).
		Return(int64(0), assert.AnError)

	resumen, err := svc.Resumir(context.Background(), esc, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	assert.Nil(t, resumen)
}
