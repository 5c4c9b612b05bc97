package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistenciaCtrl "sistema_escolar_backend/internals/features/escuela/asistencias/controller"
)

// AsistenciasAdminRoutes registra la toma de asistencia y sus reportes bajo
// el grupo admin (ya autenticado).
func AsistenciasAdminRoutes(r fiber.Router, db *gorm.DB) {
	asistencia := asistenciaCtrl.NewAsistenciaController(db)
	reportes := asistenciaCtrl.NewReportesAsistenciaController(db)

	// =====================
	// Toma de asistencia
	// =====================
	grupo := r.Group("/asistencias")
	grupo.Post("/", asistencia.Registrar)             // upsert por (estudiante, curso, fecha)
	grupo.Get("/", asistencia.ListarPorCursoYFecha)   // ?curso_id=&fecha=

	// =====================
	// Reportes / agregadores
	// =====================
	rep := grupo.Group("/reportes")
	rep.Get("/matriz-mensual", reportes.MatrizMensual)
	rep.Get("/alertas-riesgo", reportes.AlertasRiesgo)
	rep.Get("/resumen-institucional", reportes.ResumenInstitucional)
	rep.Get("/tendencia-anual", reportes.TendenciaAnual)
	rep.Get("/justificaciones", reportes.Justificaciones)
}
