// file: internals/features/partners/route/partner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partnerController "ampliauto_backend/internals/features/partners/controller"
)

func PartnerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := partnerController.NewPartnerController(db)
	partners := r.Group("/partners")
	{
		partners.Get("/", ctl.List)
		partners.Post("/", ctl.Create)
		partners.Put("/:id", ctl.Update)
		partners.Delete("/:id", ctl.Delete)
	}
}
