// file: internals/features/finance/controller/receivable_controller.go
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

	model "ampliauto_backend/internals/features/finance/model"
	service "ampliauto_backend/internals/features/finance/service"
	helper "ampliauto_backend/internals/helpers"
)

type ReceivableController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewReceivableController(db *gorm.DB) *ReceivableController {
	return &ReceivableController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ReceivableController) findOwned(c *fiber.Ctx) (*model.ReceivableModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "receivable_id inválido")
	}
	var r model.ReceivableModel
	if err := ctl.DB.Scopes(model.ScopeReceivableByOwner(userID)).
		First(&r, "receivable_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Conta a receber não encontrada")
		}
		log.Printf("[ERROR] buscar conta a receber: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar conta a receber")
	}
	return &r, nil
}

// ========== List ==========
// GET /finance/receivables?status=ABERTO, ordenado por vencimento.
func (ctl *ReceivableController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	q := ctl.DB.Scopes(model.ScopeReceivableByOwner(userID))
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("receivable_status = ?", s)
	}
	var receivables []model.ReceivableModel
	if err := q.Order("receivable_due_date ASC").Find(&receivables).Error; err != nil {
		log.Printf("[ERROR] listar contas a receber: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar contas a receber")
	}
	return helper.JsonList(c, "", receivables)
}

// ========== Pay ==========
// POST /finance/receivables/:id/pay : quita e lança ENTRADA no caixa,
// tudo numa transação; pagar duas vezes é rejeitado.
func (ctl *ReceivableController) Pay(c *fiber.Ctx) error {
	r, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	if err := service.MarkReceivablePaid(ctl.DB, r, time.Now()); err != nil {
		if errors.Is(err, service.ErrAlreadyPaid) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("[ERROR] quitar conta a receber: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao confirmar recebimento")
	}
	return helper.JsonUpdated(c, "Recebimento confirmado", r)
}
