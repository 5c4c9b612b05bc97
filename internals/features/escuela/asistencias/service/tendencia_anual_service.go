package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sistema_escolar_backend/internals/features/escuela/asistencias/dto"
	"sistema_escolar_backend/internals/features/escuela/asistencias/model"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	helper "sistema_escolar_backend/internals/helpers"
	helperAuth "sistema_escolar_backend/internals/helpers/auth"
)

// TendenciaAnualService agrupa el año completo de un estudiante (todos sus
// cursos) en 12 buckets mensuales. Los 12 buckets van siempre en la salida,
// aunque estén en cero, para que el gráfico del frontend tenga forma estable.
type TendenciaAnualService struct {
	asistencias repository.AsistenciaRepository
	padron      repository.PadronRepository
}

func NewTendenciaAnualService(asistencias repository.AsistenciaRepository, padron repository.PadronRepository) *TendenciaAnualService {
	return &TendenciaAnualService{asistencias: asistencias, padron: padron}
}

func (s *TendenciaAnualService) Calcular(ctx context.Context, esc helperAuth.ContextoEscolar, estudianteID uuid.UUID, anio int) (*dto.TendenciaAnualResponse, error) {
	resp := &dto.TendenciaAnualResponse{
		EstudianteID: estudianteID,
		Anio:         anio,
		Meses:        make([]dto.TendenciaMensual, 12),
	}
	for i := range resp.Meses {
		resp.Meses[i].Mes = i
	}

	// un UUID de otra institución responde buckets en cero, nunca sus registros
	pertenece, err := s.padron.EstudianteDeInstitucion(ctx, estudianteID, esc.InstitucionID)
	if err != nil {
		return nil, fmt.Errorf("verificando estudiante: %w", err)
	}
	if !pertenece {
		return resp, nil
	}

	desde, hasta := helper.RangoAnio(anio)
	registros, err := s.asistencias.BuscarRegistros(ctx, repository.FiltroRegistros{
		EstudianteIDs: []uuid.UUID{estudianteID},
		Rango:         repository.RangoFechas{Desde: desde, Hasta: hasta},
	})
	if err != nil {
		return nil, fmt.Errorf("buscando registros: %w", err)
	}

	for _, r := range registros {
		bucket := &resp.Meses[int(r.AsistenciaFecha.Month())-1]
		switch r.Estado() {
		case model.EstadoPresente:
			bucket.Presentes++
		case model.EstadoAusente:
			bucket.Ausentes++
		case model.EstadoTardanza:
			bucket.Tardanzas++
		case model.EstadoJustificado:
			bucket.Justificados++
		}
	}

	return resp, nil
}
