package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"sistema_escolar_backend/internals/features/escuela/asistencias/dto"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	helper "sistema_escolar_backend/internals/helpers"
	helperAuth "sistema_escolar_backend/internals/helpers/auth"
)

// límite de fan-out por request; las consultas por nivel son independientes
const maxConsultasParalelas = 8

// ResumenInstitucionalService arma el tablero diario: presentes, ausentes y
// matriculados por nivel académico para una sola fecha.
//
// Ojo con la semántica: aquí ausentes = matriculados - presentes (ausencia
// implícita). Un estudiante sin registro ese día cuenta como ausente, a
// diferencia de la matriz mensual donde "sin registro" es distinto de
// "ausente". El resumen debe rendir cuentas por cada matriculado.
type ResumenInstitucionalService struct {
	asistencias repository.AsistenciaRepository
	padron      repository.PadronRepository
}

func NewResumenInstitucionalService(asistencias repository.AsistenciaRepository, padron repository.PadronRepository) *ResumenInstitucionalService {
	return &ResumenInstitucionalService{asistencias: asistencias, padron: padron}
}

func (s *ResumenInstitucionalService) Resumir(ctx context.Context, esc helperAuth.ContextoEscolar, fecha time.Time) (*dto.ResumenInstitucionalResponse, error) {
	niveles, err := s.padron.Niveles(ctx, esc.InstitucionID)
	if err != nil {
		return nil, fmt.Errorf("resolviendo niveles: %w", err)
	}

	resp := &dto.ResumenInstitucionalResponse{
		Fecha:   fecha.Format("2006-01-02"),
		Niveles: make([]dto.ResumenNivelResponse, len(niveles)),
	}
	if len(niveles) == 0 {
		return resp, nil
	}

	dia := repository.RangoFechas{
		Desde: helper.InicioDia(fecha),
		Hasta: helper.FinDia(fecha),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConsultasParalelas)

	for i, nivel := range niveles {
		i, nivel := i, nivel
		g.Go(func() error {
			presentes, err := s.asistencias.ContarPresentesPorNivel(gctx, nivel.NivelAcademicoID, esc.AnioAcademico, dia)
			if err != nil {
				return fmt.Errorf("contando presentes de %s: %w", nivel.Etiqueta(), err)
			}
			matriculados, err := s.padron.ContarMatriculasActivas(gctx, nivel.NivelAcademicoID, esc.AnioAcademico)
			if err != nil {
				return fmt.Errorf("contando matrículas de %s: %w", nivel.Etiqueta(), err)
			}
			resp.Niveles[i] = dto.ResumenNivelResponse{
				NivelAcademicoID: nivel.NivelAcademicoID,
				NivelAcademico:   nivel.Etiqueta(),
				Presentes:        presentes,
				Ausentes:         matriculados - presentes,
				Matriculados:     matriculados,
			}
			return nil
		})
	}

	// todo o nada: si falla un nivel no se devuelven resultados parciales
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
