// file: internals/features/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "ampliauto_backend/internals/features/settings/controller"
)

func SettingsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := settingsController.NewSettingsController(db)
	settings := r.Group("/settings")
	{
		settings.Get("/", ctl.Get)
		settings.Put("/", ctl.Upsert)
	}
}
