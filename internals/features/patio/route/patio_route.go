// file: internals/features/patio/route/patio_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	patioController "ampliauto_backend/internals/features/patio/controller"
)

func PatioAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := patioController.NewVehicleController(db)
	vehicles := r.Group("/vehicles")
	{
		vehicles.Get("/", ctl.List)
		vehicles.Post("/", ctl.Create)
		vehicles.Put("/:id", ctl.Update)
		vehicles.Delete("/:id", ctl.Delete)

		// ciclo de vida
		vehicles.Post("/:id/release-request", ctl.ReleaseRequested)
		vehicles.Post("/:id/release-confirm", ctl.ReleaseConfirmed)
		vehicles.Post("/:id/removal-confirm", ctl.RemovalConfirmed)
		vehicles.Post("/:id/removed", ctl.Removed)
	}
}
