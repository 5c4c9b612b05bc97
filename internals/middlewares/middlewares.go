package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sistema_escolar_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra la cadena base de middlewares de la app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
