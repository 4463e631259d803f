// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ampliauto_backend/internals/configs"
	authRepo "ampliauto_backend/internals/features/auth/repository"
	authRoute "ampliauto_backend/internals/features/auth/route"
	authService "ampliauto_backend/internals/features/auth/service"
	financeRoute "ampliauto_backend/internals/features/finance/route"
	panelRoute "ampliauto_backend/internals/features/panel/route"
	partnerRoute "ampliauto_backend/internals/features/partners/route"
	patioRoute "ampliauto_backend/internals/features/patio/route"
	settingsRoute "ampliauto_backend/internals/features/settings/route"
	authMw "ampliauto_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ADMIN (protegido) =====================
	// Tudo sob /api/a exige token válido E o e-mail do administrador.
	log.Println("[INFO] Setting up ADMIN group...")
	gate := authMw.AuthAdmin(authMw.AuthAdminOpts{
		Secret:     configs.JWTSecret,
		AdminEmail: configs.AdminEmail,
		BlacklistChecker: func(rawToken string) (bool, error) {
			return authRepo.IsTokenBlacklisted(db, rawToken)
		},
		OnNotAllowed: func(c *fiber.Ctx, rawToken string) {
			authService.TerminateSession(db, c, rawToken)
		},
		AllowCookieFallback: true,
	})
	admin := app.Group("/api/a", gate)

	// /me fica fora do prefixo /api/a mas atrás do mesmo gate
	authRoute.MeRoute(app, gate, db)
	panelRoute.PanelAdminRoutes(admin, db)
	patioRoute.PatioAdminRoutes(admin, db)
	partnerRoute.PartnerAdminRoutes(admin, db)
	financeRoute.FinanceAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
}
