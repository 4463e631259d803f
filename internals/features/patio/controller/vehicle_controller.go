// file: internals/features/patio/controller/vehicle_controller.go
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

	financeModel "ampliauto_backend/internals/features/finance/model"
	dto "ampliauto_backend/internals/features/patio/dto"
	model "ampliauto_backend/internals/features/patio/model"
	service "ampliauto_backend/internals/features/patio/service"
	helper "ampliauto_backend/internals/helpers"
)

type VehicleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// findOwned carrega o veículo garantindo que pertence ao admin logado.
func (ctl *VehicleController) findOwned(c *fiber.Ctx) (*model.VehicleModel, error) {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "vehicle_id inválido")
	}
	var v model.VehicleModel
	if err := ctl.DB.Scopes(model.ScopeByOwner(userID)).
		First(&v, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Veículo não encontrado")
		}
		log.Printf("[ERROR] buscar veículo: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar veículo")
	}
	return &v, nil
}

// ========== List ==========
// GET /vehicles?status=NO_PATIO&q=ABC
func (ctl *VehicleController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.Scopes(model.ScopeByOwner(userID))
	if s := model.VehicleStatus(strings.TrimSpace(c.Query("status"))); s != "" {
		if !s.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status inválido")
		}
		q = q.Scopes(model.ScopeByStatus(s))
	}
	if plate := strings.TrimSpace(c.Query("q")); plate != "" {
		q = q.Where("vehicle_plate ILIKE ?", "%"+strings.ToUpper(plate)+"%")
	}

	var vehicles []model.VehicleModel
	if err := q.Order("vehicle_entry_at DESC").Find(&vehicles).Error; err != nil {
		log.Printf("[ERROR] listar veículos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar veículos")
	}
	return helper.JsonList(c, "", dto.FromModelVehicles(vehicles, time.Now()))
}

// ========== Create ==========
func (ctl *VehicleController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "vehicle_entry_at inválido (use RFC3339)")
	}
	if err := ctl.DB.Create(v).Error; err != nil {
		log.Printf("[ERROR] criar veículo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar veículo")
	}
	return helper.JsonCreated(c, "Veículo registrado", dto.FromModelVehicle(v, time.Now()))
}

// ========== Update ==========
// Edição de cadastro é permitida em qualquer status.
func (ctl *VehicleController) Update(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyTo(v); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "vehicle_entry_at inválido (use RFC3339)")
	}
	if err := ctl.DB.Save(v).Error; err != nil {
		log.Printf("[ERROR] atualizar veículo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar veículo")
	}
	return helper.JsonUpdated(c, "Veículo atualizado", dto.FromModelVehicle(v, time.Now()))
}

// ========== Delete ==========
// Apaga o veículo e anula a referência fraca das cobranças na mesma
// transação; o histórico financeiro permanece (com snapshot).
func (ctl *VehicleController) Delete(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&financeModel.ReceivableModel{}).
			Where("receivable_vehicle_id = ?", v.VehicleID).
			Update("receivable_vehicle_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.VehicleModel{}, "vehicle_id = ?", v.VehicleID).Error
	})
	if err != nil {
		log.Printf("[ERROR] excluir veículo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir veículo")
	}
	return helper.JsonDeleted(c, "Veículo excluído", fiber.Map{"vehicle_id": v.VehicleID})
}

/* =========================================================
   Transições do ciclo de vida
   ========================================================= */

// ========== POST /:id/release-request ==========
func (ctl *VehicleController) ReleaseRequested(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	var req dto.ReleaseRequestedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := service.ApplyReleaseRequested(v, req.RequestedBy); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if err := ctl.DB.Save(v).Error; err != nil {
		log.Printf("[ERROR] solicitar liberação: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao solicitar liberação")
	}
	return helper.JsonUpdated(c, "Liberação solicitada", dto.FromModelVehicle(v, time.Now()))
}

// ========== POST /:id/release-confirm ==========
// Confirma a liberação e cria a conta a receber na MESMA transação.
// O valor é um snapshot: diárias até agora × diária, nunca recalculado.
func (ctl *VehicleController) ReleaseConfirmed(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	var req dto.ReleaseConfirmedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date inválida (use YYYY-MM-DD)")
	}

	now := time.Now()
	amount := service.ReleaseAmount(v, now)

	if err := service.ApplyReleaseConfirmed(v, req.PayerName, dueDate, req.ConfirmedBy); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	vehicleID := v.VehicleID
	receivable := financeModel.ReceivableModel{
		ReceivableUserID:    v.VehicleUserID,
		ReceivableVehicleID: &vehicleID,
		ReceivablePayerName: strings.TrimSpace(req.PayerName),
		ReceivableDueDate:   dueDate,
		ReceivableAmount:    amount,
		ReceivableStatus:    financeModel.ReceivableAberto,
	}
	snap := financeModel.ReceivableVehicleSnapshotPayload{
		ID:    v.VehicleID,
		Plate: v.VehiclePlate,
	}
	if v.VehicleBrand != nil {
		snap.Brand = *v.VehicleBrand
	}
	if v.VehicleModelName != nil {
		snap.Model = *v.VehicleModelName
	}
	if err := receivable.SetVehicleSnapshot(&snap); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar snapshot do veículo")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(v).Error; err != nil {
			return err
		}
		return tx.Create(&receivable).Error
	})
	if err != nil {
		log.Printf("[ERROR] confirmar liberação: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao confirmar liberação")
	}

	return helper.JsonUpdated(c, "Liberação confirmada", fiber.Map{
		"vehicle":    dto.FromModelVehicle(v, now),
		"receivable": receivable,
	})
}

// ========== POST /:id/removal-confirm ==========
func (ctl *VehicleController) RemovalConfirmed(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	var req dto.RemovalConfirmedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := service.ApplyRemovalConfirmed(v, req.ConfirmedBy); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if err := ctl.DB.Save(v).Error; err != nil {
		log.Printf("[ERROR] confirmar remoção: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao confirmar remoção")
	}
	return helper.JsonUpdated(c, "Remoção confirmada", dto.FromModelVehicle(v, time.Now()))
}

// ========== POST /:id/removed ==========
func (ctl *VehicleController) Removed(c *fiber.Ctx) error {
	v, err := ctl.findOwned(c)
	if err != nil {
		return err
	}
	var req dto.VehicleRemovedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	removedAt, err := time.Parse(time.RFC3339, req.RemovedAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "removed_at inválido (use RFC3339)")
	}
	if err := service.ApplyRemoved(v, removedAt, req.RemovedBy); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if err := ctl.DB.Save(v).Error; err != nil {
		log.Printf("[ERROR] marcar removido: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao marcar veículo como removido")
	}
	return helper.JsonUpdated(c, "Veículo removido", dto.FromModelVehicle(v, time.Now()))
}
