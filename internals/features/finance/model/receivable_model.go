// file: internals/features/finance/model/receivable_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Status
   ========================= */

type ReceivableStatus string

const (
	ReceivableAberto ReceivableStatus = "ABERTO"
	ReceivablePago   ReceivableStatus = "PAGO"
)

/* =========================
   Snapshot do veículo (JSONB)
   ========================= */

// ReceivableVehicleSnapshotPayload guarda o retrato do veículo no momento da
// cobrança. A referência vehicle_id é fraca: se o veículo for apagado, o
// snapshot mantém os documentos legíveis.
type ReceivableVehicleSnapshotPayload struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"plate,omitempty"`
	Brand string    `json:"brand,omitempty"`
	Model string    `json:"model,omitempty"`
}

/* =========================
   Model: accounts_receivable
   ========================= */

type ReceivableModel struct {
	ReceivableID     uuid.UUID `json:"receivable_id" gorm:"column:receivable_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReceivableUserID uuid.UUID `json:"receivable_user_id" gorm:"column:receivable_user_id;type:uuid;not null;index"`

	// referência fraca (SET NULL quando o veículo é apagado)
	ReceivableVehicleID       *uuid.UUID     `json:"receivable_vehicle_id,omitempty" gorm:"column:receivable_vehicle_id;type:uuid;index"`
	ReceivableVehicleSnapshot datatypes.JSON `json:"receivable_vehicle_snapshot,omitempty" gorm:"column:receivable_vehicle_snapshot;type:jsonb"`

	ReceivablePayerName string    `json:"receivable_payer_name" gorm:"column:receivable_payer_name;type:varchar(120);not null"`
	ReceivableDueDate   time.Time `json:"receivable_due_date" gorm:"column:receivable_due_date;type:date;not null"`
	ReceivableAmount    float64   `json:"receivable_amount" gorm:"column:receivable_amount;type:numeric(12,2);not null"`

	ReceivableStatus ReceivableStatus `json:"receivable_status" gorm:"column:receivable_status;type:varchar(12);not null;default:'ABERTO';index"`
	ReceivablePaidAt *time.Time       `json:"receivable_paid_at,omitempty" gorm:"column:receivable_paid_at;type:timestamptz"`

	ReceivableCreatedAt time.Time `json:"receivable_created_at" gorm:"column:receivable_created_at;type:timestamptz;not null;default:now()"`
}

func (ReceivableModel) TableName() string { return "accounts_receivable" }

func (r *ReceivableModel) SetVehicleSnapshot(v *ReceivableVehicleSnapshotPayload) error {
	if v == nil {
		r.ReceivableVehicleSnapshot = nil
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.ReceivableVehicleSnapshot = datatypes.JSON(b)
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeReceivableByOwner(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("receivable_user_id = ?", userID)
	}
}

func ScopeReceivableAberto(db *gorm.DB) *gorm.DB {
	return db.Where("receivable_status = ?", ReceivableAberto)
}
