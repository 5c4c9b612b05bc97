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

type ParamsMatrizMensual struct {
	NivelAcademicoID uuid.UUID
	Mes              int // 0-based
	Anio             int
	// CursoID opcional; si es nil se usa el primer curso del nivel.
	CursoID *uuid.UUID
}

// MatrizMensualService arma la grilla densa día × estudiante de un mes para
// un nivel académico: cada celda es el estado derivado del registro o nil
// (sin dato) cuando no existe registro.
type MatrizMensualService struct {
	asistencias repository.AsistenciaRepository
	padron      repository.PadronRepository
}

func NewMatrizMensualService(asistencias repository.AsistenciaRepository, padron repository.PadronRepository) *MatrizMensualService {
	return &MatrizMensualService{asistencias: asistencias, padron: padron}
}

func (s *MatrizMensualService) Construir(ctx context.Context, esc helperAuth.ContextoEscolar, p ParamsMatrizMensual) (*dto.MatrizMensualResponse, error) {
	if p.Mes < 0 || p.Mes > 11 {
		return nil, ErrMesInvalido
	}

	cursoID, err := s.resolverCurso(ctx, p)
	if err != nil {
		return nil, err
	}

	diasDelMes := helper.DiasEnMes(p.Anio, p.Mes)
	resp := &dto.MatrizMensualResponse{
		NivelAcademicoID: p.NivelAcademicoID,
		CursoID:          cursoID,
		Mes:              p.Mes,
		Anio:             p.Anio,
		DiasDelMes:       diasDelMes,
		Estudiantes:      []dto.FilaMatrizEstudiante{},
	}

	padron, err := s.padron.PadronActivo(ctx, p.NivelAcademicoID, esc.AnioAcademico)
	if err != nil {
		return nil, fmt.Errorf("resolviendo padrón: %w", err)
	}
	// nivel sin matriculados: matriz vacía con dias_del_mes poblado
	if len(padron) == 0 {
		return resp, nil
	}

	estudianteIDs := make([]uuid.UUID, 0, len(padron))
	for _, e := range padron {
		estudianteIDs = append(estudianteIDs, e.EstudianteID)
	}

	desde, hasta := helper.RangoMes(p.Anio, p.Mes)
	registros, err := s.asistencias.BuscarRegistros(ctx, repository.FiltroRegistros{
		EstudianteIDs: estudianteIDs,
		CursoID:       &cursoID,
		Rango:         repository.RangoFechas{Desde: desde, Hasta: hasta},
	})
	if err != nil {
		return nil, fmt.Errorf("buscando registros: %w", err)
	}

	// índice (estudiante, día del mes) → registro
	type clave struct {
		estudiante uuid.UUID
		dia        int
	}
	porDia := make(map[clave]model.AsistenciaModel, len(registros))
	for _, r := range registros {
		porDia[clave{r.AsistenciaEstudianteID, r.AsistenciaFecha.Day()}] = r
	}

	for _, e := range padron {
		fila := dto.FilaMatrizEstudiante{
			EstudianteID:   e.EstudianteID,
			NombreCompleto: e.NombreCompleto(),
			Estados:        make([]*model.EstadoAsistencia, diasDelMes),
		}
		for dia := 1; dia <= diasDelMes; dia++ {
			r, ok := porDia[clave{e.EstudianteID, dia}]
			if !ok {
				continue // sin dato, queda nil
			}
			estado := r.Estado()
			fila.Estados[dia-1] = &estado
			switch estado {
			case model.EstadoPresente:
				fila.Conteos.Presentes++
			case model.EstadoAusente:
				fila.Conteos.Ausentes++
			case model.EstadoTardanza:
				fila.Conteos.Tardanzas++
			case model.EstadoJustificado:
				fila.Conteos.Justificados++
			}
		}
		resp.Estudiantes = append(resp.Estudiantes, fila)
	}

	return resp, nil
}

func (s *MatrizMensualService) resolverCurso(ctx context.Context, p ParamsMatrizMensual) (uuid.UUID, error) {
	if p.CursoID != nil {
		return *p.CursoID, nil
	}
	curso, err := s.padron.PrimerCursoDeNivel(ctx, p.NivelAcademicoID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolviendo curso de alcance: %w", err)
	}
	if curso == nil {
		return uuid.Nil, ErrNivelSinCursos
	}
	return curso.CursoID, nil
}
