package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"sistema_escolar_backend/internals/features/escuela/asistencias/dto"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	helper "sistema_escolar_backend/internals/helpers"
	helperAuth "sistema_escolar_backend/internals/helpers/auth"
)

// SinDetalle: placeholder cuando la inasistencia justificada no tiene texto.
const SinDetalle = "Sin detalle"

type ParamsJustificaciones struct {
	Anio int
	// NivelAcademicoID opcional; nil = toda la institución.
	NivelAcademicoID *uuid.UUID
}

// JustificacionesService lista para auditoría las inasistencias justificadas
// del año, más recientes primero, con nombre y nivel resueltos.
type JustificacionesService struct {
	asistencias repository.AsistenciaRepository
	padron      repository.PadronRepository
}

func NewJustificacionesService(asistencias repository.AsistenciaRepository, padron repository.PadronRepository) *JustificacionesService {
	return &JustificacionesService{asistencias: asistencias, padron: padron}
}

func (s *JustificacionesService) Listar(ctx context.Context, esc helperAuth.ContextoEscolar, p ParamsJustificaciones) ([]dto.JustificacionResponse, error) {
	padron, err := s.padron.PadronInstitucion(ctx, esc.InstitucionID, p.Anio, p.NivelAcademicoID)
	if err != nil {
		return nil, fmt.Errorf("resolviendo padrón: %w", err)
	}
	if len(padron) == 0 {
		return []dto.JustificacionResponse{}, nil
	}

	porEstudiante := make(map[uuid.UUID]repository.EstudiantePadron, len(padron))
	estudianteIDs := make([]uuid.UUID, 0, len(padron))
	for _, e := range padron {
		porEstudiante[e.EstudianteID] = e
		estudianteIDs = append(estudianteIDs, e.EstudianteID)
	}

	desde, hasta := helper.RangoAnio(p.Anio)
	registros, err := s.asistencias.BuscarRegistros(ctx, repository.FiltroRegistros{
		EstudianteIDs:    estudianteIDs,
		Rango:            repository.RangoFechas{Desde: desde, Hasta: hasta},
		SoloJustificadas: true,
	})
	if err != nil {
		return nil, fmt.Errorf("buscando justificaciones: %w", err)
	}

	lista := make([]dto.JustificacionResponse, 0, len(registros))
	for _, r := range registros {
		e, ok := porEstudiante[r.AsistenciaEstudianteID]
		if !ok {
			continue
		}
		justificacion := SinDetalle
		if r.AsistenciaJustificacion != nil {
			if txt := strings.TrimSpace(*r.AsistenciaJustificacion); txt != "" {
				justificacion = txt
			}
		}
		lista = append(lista, dto.JustificacionResponse{
			AsistenciaID:   r.AsistenciaID,
			EstudianteID:   r.AsistenciaEstudianteID,
			NombreCompleto: e.NombreCompleto(),
			NivelAcademico: e.EtiquetaNivel(),
			Fecha:          r.AsistenciaFecha.Format("2006-01-02"),
			Justificacion:  justificacion,
		})
	}

	// más recientes primero
	sort.SliceStable(lista, func(i, j int) bool {
		return lista[i].Fecha > lista[j].Fecha
	})

	return lista, nil
}
