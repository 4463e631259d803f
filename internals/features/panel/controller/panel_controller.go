// file: internals/features/panel/controller/panel_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeModel "ampliauto_backend/internals/features/finance/model"
	financeService "ampliauto_backend/internals/features/finance/service"
	patioModel "ampliauto_backend/internals/features/patio/model"
	patioService "ampliauto_backend/internals/features/patio/service"
	helper "ampliauto_backend/internals/helpers"
)

type PanelController struct {
	DB *gorm.DB
}

func NewPanelController(db *gorm.DB) *PanelController {
	return &PanelController{DB: db}
}

// PanelMetricsResponse: números do painel, recalculados a cada leitura.
// Nada aqui é persistido ou cacheado.
type PanelMetricsResponse struct {
	VehiclesInPatio   int     `json:"vehicles_in_patio"`
	VehiclesActive    int     `json:"vehicles_active"`
	ValueGeneratedNow float64 `json:"value_generated_now"`
	ReleasesRequested int     `json:"releases_requested"`
	ReleasesConfirmed int     `json:"releases_confirmed"`
	PayablesOverdue   int     `json:"payables_overdue"`
	PayablesDueToday  int     `json:"payables_due_today"`
	CashBalance       float64 `json:"cash_balance"`
}

// ========== Metrics ==========
// GET /panel
func (ctl *PanelController) Metrics(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	now := time.Now()

	var vehicles []patioModel.VehicleModel
	if err := ctl.DB.Scopes(patioModel.ScopeByOwner(userID)).Find(&vehicles).Error; err != nil {
		log.Printf("[ERROR] painel: carregar veículos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar o painel")
	}

	var payables []financeModel.PayableModel
	if err := ctl.DB.Scopes(financeModel.ScopePayableByOwner(userID)).Find(&payables).Error; err != nil {
		log.Printf("[ERROR] painel: carregar contas a pagar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar o painel")
	}

	var entries []financeModel.CashLedgerModel
	if err := ctl.DB.Scopes(financeModel.ScopeLedgerByOwner(userID)).Find(&entries).Error; err != nil {
		log.Printf("[ERROR] painel: carregar caixa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar o painel")
	}

	resp := PanelMetricsResponse{
		CashBalance: financeService.LedgerBalance(entries),
	}
	for i := range vehicles {
		v := &vehicles[i]
		switch v.VehicleStatus {
		case patioModel.StatusNoPatio:
			resp.VehiclesInPatio++
		case patioModel.StatusLiberacaoSolicitada:
			resp.ReleasesRequested++
		case patioModel.StatusLiberacaoConfirmada:
			resp.ReleasesConfirmed++
		}
		// "gerado até agora": diárias acumuladas de todo veículo ainda ativo
		if v.VehicleStatus != patioModel.StatusRemovido {
			resp.VehiclesActive++
			resp.ValueGeneratedNow += patioService.ReleaseAmount(v, now)
		}
	}
	resp.PayablesOverdue = financeService.CountOverdue(payables, now)
	resp.PayablesDueToday = financeService.CountDueToday(payables, now)

	return helper.JsonOK(c, "", resp)
}
