package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	"sistema_escolar_backend/internals/features/escuela/asistencias/service"
	helper "sistema_escolar_backend/internals/helpers"
	helperAuth "sistema_escolar_backend/internals/helpers/auth"
)

// ReportesAsistenciaController expone los cinco agregadores de asistencia.
// Cada operación recalcula todo en cada llamada; no hay caché ni estado.
type ReportesAsistenciaController struct {
	matriz          *service.MatrizMensualService
	alertas         *service.AlertasRiesgoService
	resumen         *service.ResumenInstitucionalService
	tendencia       *service.TendenciaAnualService
	justificaciones *service.JustificacionesService
}

func NewReportesAsistenciaController(db *gorm.DB) *ReportesAsistenciaController {
	asistencias := repository.NewAsistenciaRepository(db)
	padron := repository.NewPadronRepository(db)
	return &ReportesAsistenciaController{
		matriz:          service.NewMatrizMensualService(asistencias, padron),
		alertas:         service.NewAlertasRiesgoService(asistencias, padron),
		resumen:         service.NewResumenInstitucionalService(asistencias, padron),
		tendencia:       service.NewTendenciaAnualService(asistencias, padron),
		justificaciones: service.NewJustificacionesService(asistencias, padron),
	}
}

// GET /asistencias/reportes/matriz-mensual?nivel_academico_id=&mes=&anio=[&curso_id=]
func (ctrl *ReportesAsistenciaController) MatrizMensual(c *fiber.Ctx) error {
	esc, err := helperAuth.ContextoDesdeRequest(c)
	if err != nil {
		return err
	}

	nivelID, err := uuid.Parse(c.Query("nivel_academico_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "nivel_academico_id no válido")
	}

	params := service.ParamsMatrizMensual{
		NivelAcademicoID: nivelID,
		Mes:              c.QueryInt("mes", -1),
		Anio:             c.QueryInt("anio", esc.AnioAcademico),
	}
	if raw := c.Query("curso_id"); raw != "" {
		cursoID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "curso_id no válido")
		}
		params.CursoID = &cursoID
	}

	matriz, err := ctrl.matriz.Construir(c.UserContext(), esc, params)
	if err != nil {
		return mapearErrorReporte(err)
	}
	return helper.Success(c, "Matriz mensual de asistencia", matriz)
}

// GET /asistencias/reportes/alertas-riesgo?anio=[&nivel_academico_id=]
func (ctrl *ReportesAsistenciaController) AlertasRiesgo(c *fiber.Ctx) error {
	esc, err := helperAuth.ContextoDesdeRequest(c)
	if err != nil {
		return err
	}

	params := service.ParamsAlertasRiesgo{Anio: c.QueryInt("anio", esc.AnioAcademico)}
	if raw := c.Query("nivel_academico_id"); raw != "" {
		nivelID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "nivel_academico_id no válido")
		}
		params.NivelAcademicoID = &nivelID
	}

	alertas, err := ctrl.alertas.Evaluar(c.UserContext(), esc, params)
	if err != nil {
		return mapearErrorReporte(err)
	}
	return helper.Success(c, "Alertas de riesgo por inasistencia", alertas)
}

// GET /asistencias/reportes/resumen-institucional?fecha=YYYY-MM-DD
func (ctrl *ReportesAsistenciaController) ResumenInstitucional(c *fiber.Ctx) error {
	esc, err := helperAuth.ContextoDesdeRequest(c)
	if err != nil {
		return err
	}

	fecha, err := time.ParseInLocation("2006-01-02", c.Query("fecha"), time.UTC)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fecha no válida (se espera YYYY-MM-DD)")
	}

	resumen, err := ctrl.resumen.Resumir(c.UserContext(), esc, fecha)
	if err != nil {
		return mapearErrorReporte(err)
	}
	return helper.Success(c, "Resumen institucional del día", resumen)
}

// GET /asistencias/reportes/tendencia-anual?estudiante_id=&anio=
func (ctrl *ReportesAsistenciaController) TendenciaAnual(c *fiber.Ctx) error {
	esc, err := helperAuth.ContextoDesdeRequest(c)
	if err != nil {
		return err
	}

	estudianteID, err := uuid.Parse(c.Query("estudiante_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "estudiante_id no válido")
	}

	tendencia, err := ctrl.tendencia.Calcular(c.UserContext(), esc, estudianteID, c.QueryInt("anio", esc.AnioAcademico))
	if err != nil {
		return mapearErrorReporte(err)
	}
	return helper.Success(c, "Tendencia anual del estudiante", tendencia)
}

// GET /asistencias/reportes/justificaciones?anio=[&nivel_academico_id=]
// nivel_academico_id vacío o "todos" = toda la institución.
func (ctrl *ReportesAsistenciaController) Justificaciones(c *fiber.Ctx) error {
	esc, err := helperAuth.ContextoDesdeRequest(c)
	if err != nil {
		return err
	}

	params := service.ParamsJustificaciones{Anio: c.QueryInt("anio", esc.AnioAcademico)}
	if raw := c.Query("nivel_academico_id"); raw != "" && raw != "todos" {
		nivelID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "nivel_academico_id no válido")
		}
		params.NivelAcademicoID = &nivelID
	}

	lista, err := ctrl.justificaciones.Listar(c.UserContext(), esc, params)
	if err != nil {
		return mapearErrorReporte(err)
	}
	return helper.Success(c, "Inasistencias justificadas", lista)
}

// Errores de alcance viajan tal cual (400); cualquier falla del store se
// loguea con detalle y sale como mensaje genérico, sin filtrar internals.
func mapearErrorReporte(err error) error {
	switch {
	case errors.Is(err, service.ErrNivelSinCursos),
		errors.Is(err, service.ErrMesInvalido):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] reporte de asistencia: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la asistencia")
	}
}
