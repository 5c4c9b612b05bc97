package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_escolar_backend/internals/features/escuela/asistencias/dto"
	"sistema_escolar_backend/internals/features/escuela/asistencias/repository"
	helper "sistema_escolar_backend/internals/helpers"
)

// AsistenciaController cubre la toma de asistencia: upsert por
// (estudiante, curso, fecha) y la lista del día para el curso.
type AsistenciaController struct {
	asistencias repository.AsistenciaRepository
}

func NewAsistenciaController(db *gorm.DB) *AsistenciaController {
	return &AsistenciaController{asistencias: repository.NewAsistenciaRepository(db)}
}

// POST /asistencias
// Upsert atómico: repetir el mismo payload deja un solo registro, sin cambios.
func (ctrl *AsistenciaController) Registrar(c *fiber.Ctx) error {
	var req dto.RegistrarAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha no válida (se espera YYYY-MM-DD)")
	}

	if err := ctrl.asistencias.GuardarRegistro(c.UserContext(), m); err != nil {
		log.Printf("[ERROR] upsert asistencia: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la asistencia")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asistencia registrada", dto.FromModel(*m))
}

// GET /asistencias?curso_id=...&fecha=YYYY-MM-DD
// Registros del curso para un día (la vista de la toma de asistencia).
func (ctrl *AsistenciaController) ListarPorCursoYFecha(c *fiber.Ctx) error {
	cursoID, err := uuid.Parse(c.Query("curso_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "curso_id no válido")
	}
	fecha, err := time.ParseInLocation("2006-01-02", c.Query("fecha"), time.UTC)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "fecha no válida (se espera YYYY-MM-DD)")
	}

	registros, err := ctrl.asistencias.BuscarRegistros(c.UserContext(), repository.FiltroRegistros{
		CursoID: &cursoID,
		Rango: repository.RangoFechas{
			Desde: helper.InicioDia(fecha),
			Hasta: helper.FinDia(fecha),
		},
	})
	if err != nil {
		log.Printf("[ERROR] listar asistencias: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la asistencia")
	}

	resp := make([]dto.AsistenciaResponse, 0, len(registros))
	for _, r := range registros {
		resp = append(resp, dto.FromModel(r))
	}
	return helper.Success(c, "Asistencias del día", resp)
}
