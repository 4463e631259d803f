// file: internals/features/settings/controller/settings_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "ampliauto_backend/internals/features/settings/dto"
	model "ampliauto_backend/internals/features/settings/model"
	helper "ampliauto_backend/internals/helpers"
)

type SettingsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Get ==========
// Pode não existir ainda: devolve data=null, a tela mostra o formulário vazio.
func (ctl *SettingsController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var s model.SettingsModel
	if err := ctl.DB.First(&s, "settings_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", nil)
		}
		log.Printf("[ERROR] buscar configurações: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar configurações")
	}
	return helper.JsonOK(c, "", s)
}

// ========== Upsert ==========
// ON CONFLICT (settings_user_id) DO UPDATE: um registro por admin.
func (ctl *SettingsController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var req dto.UpsertSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s := req.ToModel(userID)
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "settings_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"settings_company_name",
			"settings_cnpj",
			"settings_bank_details",
			"settings_template_billing",
			"settings_template_invoice",
		}),
	}).Create(s).Error; err != nil {
		log.Printf("[ERROR] salvar configurações: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar configurações")
	}
	return helper.JsonUpdated(c, "Configurações salvas", s)
}
