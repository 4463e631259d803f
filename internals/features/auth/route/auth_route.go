// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ampliauto_backend/internals/configs"
	authController "ampliauto_backend/internals/features/auth/controller"
	rateLimiter "ampliauto_backend/internals/middlewares"
	authMw "ampliauto_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// admin já logado que volta ao /login vai direto para o painel
	baseAuth.Post("/login",
		rateLimiter.LoginRateLimiter(),
		authMw.RedirectIfAuthenticated(configs.JWTSecret, configs.AdminEmail),
		ctl.Login,
	)
	baseAuth.Post("/register", ctl.Register)
	baseAuth.Post("/refresh-token", ctl.RefreshToken)
	baseAuth.Post("/logout", ctl.Logout)
}

// MeRoute só responde com sessão de admin válida; o gate chega pronto de quem
// monta as rotas para não proteger o /api/auth inteiro por engano.
func MeRoute(app fiber.Router, gate fiber.Handler, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	app.Get("/api/auth/me", gate, ctl.Me)
}
