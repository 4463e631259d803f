package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "ampliauto_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem correta
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
