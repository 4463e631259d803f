// file: internals/features/finance/controller/document_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "ampliauto_backend/internals/constants"
	dto "ampliauto_backend/internals/features/finance/dto"
	model "ampliauto_backend/internals/features/finance/model"
	settingsModel "ampliauto_backend/internals/features/settings/model"
	helper "ampliauto_backend/internals/helpers"
)

// DocumentController monta os dados de "gerar cobrança" e "gerar nota":
// a cobrança + o snapshot do veículo + o cabeçalho da empresa vindo das
// configurações. A renderização final é do cliente.
type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

// ========== Bill ==========
// GET /finance/receivables/:id/bill
func (ctl *DocumentController) Bill(c *fiber.Ctx) error {
	return ctl.document(c, func(s *settingsModel.SettingsModel) string {
		if s != nil && s.SettingsTemplateBilling != nil && *s.SettingsTemplateBilling != "" {
			return *s.SettingsTemplateBilling
		}
		return constants.DefaultTemplateBilling
	})
}

// ========== Invoice ==========
// GET /finance/receivables/:id/invoice
func (ctl *DocumentController) Invoice(c *fiber.Ctx) error {
	return ctl.document(c, func(s *settingsModel.SettingsModel) string {
		if s != nil && s.SettingsTemplateInvoice != nil && *s.SettingsTemplateInvoice != "" {
			return *s.SettingsTemplateInvoice
		}
		return constants.DefaultTemplateInvoice
	})
}

func (ctl *DocumentController) document(c *fiber.Ctx, pickTemplate func(*settingsModel.SettingsModel) string) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rc := ReceivableController{DB: ctl.DB}
	r, err := rc.findOwned(c)
	if err != nil {
		return err
	}

	resp := dto.DocumentResponse{
		ReceivableID: r.ReceivableID,
		PayerName:    r.ReceivablePayerName,
		Amount:       r.ReceivableAmount,
		DueDate:      r.ReceivableDueDate.Format("2006-01-02"),
		Status:       string(r.ReceivableStatus),
		PaidAt:       r.ReceivablePaidAt,
	}

	// snapshot sobrevive mesmo que o veículo original tenha sido apagado
	if len(r.ReceivableVehicleSnapshot) > 0 {
		var snap model.ReceivableVehicleSnapshotPayload
		if err := json.Unmarshal(r.ReceivableVehicleSnapshot, &snap); err == nil {
			resp.VehiclePlate = snap.Plate
			resp.VehicleBrand = snap.Brand
			resp.VehicleModel = snap.Model
		}
	}

	var settings settingsModel.SettingsModel
	switch err := ctl.DB.Where("settings_user_id = ?", userID).First(&settings).Error; {
	case err == nil:
		if settings.SettingsCompanyName != nil {
			resp.CompanyName = *settings.SettingsCompanyName
		}
		if settings.SettingsCNPJ != nil {
			resp.CNPJ = *settings.SettingsCNPJ
		}
		if settings.SettingsBankDetails != nil {
			resp.BankDetails = *settings.SettingsBankDetails
		}
		resp.Template = pickTemplate(&settings)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// sem configurações ainda: documento sai só com os dados da cobrança
		resp.Template = pickTemplate(nil)
	default:
		log.Printf("[ERROR] carregar configurações p/ documento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	return helper.JsonOK(c, "", resp)
}
