// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistenciasRoute "sistema_escolar_backend/internals/features/escuela/asistencias/route"
	middlewares "sistema_escolar_backend/internals/middlewares"
	escuelaMiddleware "sistema_escolar_backend/internals/middlewares/auth_escuela"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN (por institución) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope)...")
	admin := app.Group("/api/a",
		escuelaMiddleware.AuthJWT(escuelaMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middlewares.GlobalRateLimiter(),
	)

	log.Println("[INFO] Setting up AsistenciasRoutes...")
	asistenciasRoute.AsistenciasAdminRoutes(admin, db)
}
