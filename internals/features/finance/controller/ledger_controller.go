// file: internals/features/finance/controller/ledger_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ampliauto_backend/internals/features/finance/dto"
	model "ampliauto_backend/internals/features/finance/model"
	service "ampliauto_backend/internals/features/finance/service"
	helper "ampliauto_backend/internals/helpers"
)

type LedgerController struct {
	DB *gorm.DB
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{DB: db}
}

// ========== List ==========
// GET /finance/ledger: lançamentos mais recentes primeiro + saldo derivado.
func (ctl *LedgerController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var entries []model.CashLedgerModel
	if err := ctl.DB.Scopes(model.ScopeLedgerByOwner(userID)).
		Order("ledger_occurred_at DESC").
		Find(&entries).Error; err != nil {
		log.Printf("[ERROR] listar caixa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar o caixa")
	}
	return helper.JsonOK(c, "", dto.LedgerListResponse{
		Entries: entries,
		Balance: service.LedgerBalance(entries),
	})
}
