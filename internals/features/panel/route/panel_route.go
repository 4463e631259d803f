// file: internals/features/panel/route/panel_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	panelController "ampliauto_backend/internals/features/panel/controller"
)

func PanelAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := panelController.NewPanelController(db)
	r.Get("/panel", ctl.Metrics)
}
