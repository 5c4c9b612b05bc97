package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"sistema_escolar_backend/internals/features/escuela/asistencias/dto"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	helper "sistema_escolar_backend/internals/helpers"
	helperAuth "sistema_escolar_backend/internals/helpers/auth"
)

type ParamsAlertasRiesgo struct {
	Anio int
	// NivelAcademicoID opcional: restringe las alertas a un solo nivel.
	NivelAcademicoID *uuid.UUID
}

// AlertasRiesgoService calcula la tasa de ausencias injustificadas del año en
// curso por estudiante y devuelve a los que están en o sobre el umbral de la
// institución, ordenados de mayor a menor tasa.
//
// Los "días lectivos" son las fechas calendario distintas con al menos un
// registro de asistencia en la institución: un proxy del calendario escolar
// observado, no un calendario configurado. Si un día lectivo real no tuvo
// toma de asistencia, no cuenta como transcurrido.
type AlertasRiesgoService struct {
	asistencias repository.AsistenciaRepository
	padron      repository.PadronRepository

	// ahora es inyectable para las pruebas; por defecto time.Now
	ahora func() time.Time
}

func NewAlertasRiesgoService(asistencias repository.AsistenciaRepository, padron repository.PadronRepository) *AlertasRiesgoService {
	return &AlertasRiesgoService{asistencias: asistencias, padron: padron, ahora: time.Now}
}

func (s *AlertasRiesgoService) Evaluar(ctx context.Context, esc helperAuth.ContextoEscolar, p ParamsAlertasRiesgo) ([]dto.AlertaRiesgoResponse, error) {
	rango := s.rangoTranscurrido(p.Anio)

	diasLectivos, err := s.asistencias.ContarFechasConRegistros(ctx, rango)
	if err != nil {
		return nil, fmt.Errorf("contando días lectivos: %w", err)
	}
	// sin días con registros todavía: "no hay datos", no "no hay alertas"
	// (y evita la división por cero)
	if diasLectivos == 0 {
		return []dto.AlertaRiesgoResponse{}, nil
	}

	padron, err := s.padron.PadronInstitucion(ctx, esc.InstitucionID, p.Anio, p.NivelAcademicoID)
	if err != nil {
		return nil, fmt.Errorf("resolviendo padrón: %w", err)
	}
	if len(padron) == 0 {
		return []dto.AlertaRiesgoResponse{}, nil
	}

	estudianteIDs := make([]uuid.UUID, 0, len(padron))
	for _, e := range padron {
		estudianteIDs = append(estudianteIDs, e.EstudianteID)
	}

	ausencias, err := s.asistencias.ContarAusenciasInjustificadas(ctx, estudianteIDs, rango)
	if err != nil {
		return nil, fmt.Errorf("contando ausencias: %w", err)
	}

	umbral := s.padron.UmbralAlerta(ctx, esc.InstitucionID)

	alertas := make([]dto.AlertaRiesgoResponse, 0)
	for _, e := range padron {
		total := ausencias[e.EstudianteID]
		tasa := redondear2(float64(total) / float64(diasLectivos) * 100)
		if tasa < umbral { // el umbral exacto SÍ entra (>=)
			continue
		}
		alertas = append(alertas, dto.AlertaRiesgoResponse{
			EstudianteID:            e.EstudianteID,
			NombreCompleto:          e.NombreCompleto(),
			NivelAcademico:          e.EtiquetaNivel(),
			AusenciasInjustificadas: total,
			DiasLectivos:            diasLectivos,
			PorcentajeAusencia:      tasa,
		})
	}

	// estable: a igual tasa se conserva el orden del padrón (por apellido)
	sort.SliceStable(alertas, func(i, j int) bool {
		return alertas[i].PorcentajeAusencia > alertas[j].PorcentajeAusencia
	})

	return alertas, nil
}

// rangoTranscurrido: [1 enero, 31 diciembre] del año intersectado con "hasta hoy".
func (s *AlertasRiesgoService) rangoTranscurrido(anio int) repository.RangoFechas {
	desde, hasta := helper.RangoAnio(anio)
	if hoy := helper.FinDia(s.ahora()); hoy.Before(hasta) {
		hasta = hoy
	}
	return repository.RangoFechas{Desde: desde, Hasta: hasta}
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
