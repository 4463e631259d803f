// file: internals/features/partners/controller/partner_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ampliauto_backend/internals/features/partners/dto"
	model "ampliauto_backend/internals/features/partners/model"
	patioModel "ampliauto_backend/internals/features/patio/model"
	helper "ampliauto_backend/internals/helpers"
)

type PartnerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *PartnerController) findOwned(c *fiber.Ctx) (*model.PartnerModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "partner_id inválido")
	}
	var p model.PartnerModel
	if err := ctl.DB.Scopes(model.ScopeByOwner(userID)).
		First(&p, "partner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Parceiro não encontrado")
		}
		log.Printf("[ERROR] buscar parceiro: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar parceiro")
	}
	return &p, nil
}

// ========== List ==========
func (ctl *PartnerController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var partners []model.PartnerModel
	if err := ctl.DB.Scopes(model.ScopeByOwner(userID)).
		Order("partner_name ASC").Find(&partners).Error; err != nil {
		log.Printf("[ERROR] listar parceiros: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar parceiros")
	}
	return helper.JsonList(c, "", partners)
}

// ========== Create ==========
func (ctl *PartnerController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var req dto.CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	p := req.ToModel(userID)
	if err := ctl.DB.Create(p).Error; err != nil {
		log.Printf("[ERROR] criar parceiro: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar parceiro")
	}
	return helper.JsonCreated(c, "Parceiro criado", p)
}

// ========== Update ==========
func (ctl *PartnerController) Update(c *fiber.Ctx) error {
	p, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyTo(p)
	if err := ctl.DB.Save(p).Error; err != nil {
		log.Printf("[ERROR] atualizar parceiro: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar parceiro")
	}
	return helper.JsonUpdated(c, "Parceiro atualizado", p)
}

// ========== Delete ==========
// A referência em vehicles é fraca: o veículo segue existindo sem localizador.
func (ctl *PartnerController) Delete(c *fiber.Ctx) error {
	p, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&patioModel.VehicleModel{}).
			Where("vehicle_partner_id = ?", p.PartnerID).
			Update("vehicle_partner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PartnerModel{}, "partner_id = ?", p.PartnerID).Error
	})
	if err != nil {
		log.Printf("[ERROR] excluir parceiro: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir parceiro")
	}
	return helper.JsonDeleted(c, "Parceiro excluído", fiber.Map{"partner_id": p.PartnerID})
}
