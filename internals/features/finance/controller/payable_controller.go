// file: internals/features/finance/controller/payable_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ampliauto_backend/internals/features/finance/dto"
	model "ampliauto_backend/internals/features/finance/model"
	service "ampliauto_backend/internals/features/finance/service"
	helper "ampliauto_backend/internals/helpers"
)

type PayableController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPayableController(db *gorm.DB) *PayableController {
	return &PayableController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *PayableController) findOwned(c *fiber.Ctx) (*model.PayableModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "payable_id inválido")
	}
	var p model.PayableModel
	if err := ctl.DB.Scopes(model.ScopePayableByOwner(userID)).
		First(&p, "payable_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Conta a pagar não encontrada")
		}
		log.Printf("[ERROR] buscar conta a pagar: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar conta a pagar")
	}
	return &p, nil
}

// ========== List ==========
func (ctl *PayableController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	q := ctl.DB.Scopes(model.ScopePayableByOwner(userID))
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("payable_status = ?", s)
	}
	var payables []model.PayableModel
	if err := q.Order("payable_due_date ASC").Find(&payables).Error; err != nil {
		log.Printf("[ERROR] listar contas a pagar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar contas a pagar")
	}
	return helper.JsonList(c, "", payables)
}

// ========== Create ==========
func (ctl *PayableController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var req dto.CreatePayableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	p, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payable_due_date inválida (use YYYY-MM-DD)")
	}
	if err := ctl.DB.Create(p).Error; err != nil {
		log.Printf("[ERROR] criar conta a pagar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conta a pagar")
	}
	return helper.JsonCreated(c, "Conta a pagar criada", p)
}

// ========== Pay ==========
// POST /finance/payables/:id/pay: lançamento SAIDA no caixa, transacional.
func (ctl *PayableController) Pay(c *fiber.Ctx) error {
	p, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	if err := service.MarkPayablePaid(ctl.DB, p, time.Now()); err != nil {
		if errors.Is(err, service.ErrAlreadyPaid) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("[ERROR] quitar conta a pagar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao confirmar pagamento")
	}
	return helper.JsonUpdated(c, "Pagamento confirmado", p)
}
