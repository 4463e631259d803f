// file: internals/features/finance/route/finance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeController "ampliauto_backend/internals/features/finance/controller"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	receivableCtl := financeController.NewReceivableController(db)
	payableCtl := financeController.NewPayableController(db)
	ledgerCtl := financeController.NewLedgerController(db)
	documentCtl := financeController.NewDocumentController(db)

	finance := r.Group("/finance")
	{
		receivables := finance.Group("/receivables")
		{
			receivables.Get("/", receivableCtl.List)
			receivables.Post("/:id/pay", receivableCtl.Pay)

			// documentos (cobrança e nota) da cobrança
			receivables.Get("/:id/bill", documentCtl.Bill)
			receivables.Get("/:id/invoice", documentCtl.Invoice)
		}

		payables := finance.Group("/payables")
		{
			payables.Get("/", payableCtl.List)
			payables.Post("/", payableCtl.Create)
			payables.Post("/:id/pay", payableCtl.Pay)
		}

		finance.Get("/ledger", ledgerCtl.List)
	}
}
