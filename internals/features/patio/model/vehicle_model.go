// file: internals/features/patio/model/vehicle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Status do veículo
   ========================= */

// VehicleStatus é o ciclo de vida do veículo no pátio (persistido como string).
// A sequência é linear e só anda para frente.
type VehicleStatus string

const (
	StatusNoPatio             VehicleStatus = "NO_PATIO"              // no pátio, acumulando diárias
	StatusLiberacaoSolicitada VehicleStatus = "LIBERACAO_SOLICITADA"  // liberação pedida, aguardando confirmação
	StatusLiberacaoConfirmada VehicleStatus = "LIBERACAO_CONFIRMADA"  // liberação confirmada, cobrança gerada
	StatusRemocaoConfirmada   VehicleStatus = "REMOCAO_CONFIRMADA"    // remoção confirmada
	StatusRemovido            VehicleStatus = "REMOVIDO"              // removido do pátio (terminal)
)

// VehicleStatuses na ordem do ciclo de vida.
var VehicleStatuses = []VehicleStatus{
	StatusNoPatio,
	StatusLiberacaoSolicitada,
	StatusLiberacaoConfirmada,
	StatusRemocaoConfirmada,
	StatusRemovido,
}

func (s VehicleStatus) Valid() bool {
	for _, v := range VehicleStatuses {
		if v == s {
			return true
		}
	}
	return false
}

/* =========================
   Model: vehicles
   ========================= */

type VehicleModel struct {
	VehicleID     uuid.UUID `json:"vehicle_id" gorm:"column:vehicle_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleUserID uuid.UUID `json:"vehicle_user_id" gorm:"column:vehicle_user_id;type:uuid;not null;index"`

	// referência fraca ao parceiro/localizador
	VehiclePartnerID *uuid.UUID `json:"vehicle_partner_id,omitempty" gorm:"column:vehicle_partner_id;type:uuid;index"`

	VehiclePlate     string  `json:"vehicle_plate" gorm:"column:vehicle_plate;type:varchar(12);not null;index"`
	VehicleBrand     *string `json:"vehicle_brand,omitempty" gorm:"column:vehicle_brand;type:varchar(60)"`
	VehicleModelName *string `json:"vehicle_model,omitempty" gorm:"column:vehicle_model;type:varchar(60)"`

	VehicleDailyRate float64   `json:"vehicle_daily_rate" gorm:"column:vehicle_daily_rate;type:numeric(12,2);not null"`
	VehicleEntryAt   time.Time `json:"vehicle_entry_at" gorm:"column:vehicle_entry_at;type:timestamptz;not null"`

	VehicleStatus VehicleStatus `json:"vehicle_status" gorm:"column:vehicle_status;type:varchar(24);not null;default:'NO_PATIO';index"`
	VehicleNotes  *string       `json:"vehicle_notes,omitempty" gorm:"column:vehicle_notes;type:text"`

	// auditoria das transições: preenchida progressivamente, nunca limpa
	VehicleReleaseRequestedBy *string    `json:"vehicle_release_requested_by,omitempty" gorm:"column:vehicle_release_requested_by;type:varchar(120)"`
	VehicleReleaseConfirmedBy *string    `json:"vehicle_release_confirmed_by,omitempty" gorm:"column:vehicle_release_confirmed_by;type:varchar(120)"`
	VehiclePayerName          *string    `json:"vehicle_payer_name,omitempty" gorm:"column:vehicle_payer_name;type:varchar(120)"`
	VehicleReleaseDueDate     *time.Time `json:"vehicle_release_due_date,omitempty" gorm:"column:vehicle_release_due_date;type:date"`
	VehicleRemovalConfirmedBy *string    `json:"vehicle_removal_confirmed_by,omitempty" gorm:"column:vehicle_removal_confirmed_by;type:varchar(120)"`
	VehicleRemovedAt          *time.Time `json:"vehicle_removed_at,omitempty" gorm:"column:vehicle_removed_at;type:timestamptz"`
	VehicleRemovedBy          *string    `json:"vehicle_removed_by,omitempty" gorm:"column:vehicle_removed_by;type:varchar(120)"`

	VehicleCreatedAt time.Time `json:"vehicle_created_at" gorm:"column:vehicle_created_at;type:timestamptz;not null;default:now()"`
}

func (VehicleModel) TableName() string { return "vehicles" }

/* =========================
   Scopes
   ========================= */

func ScopeByOwner(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("vehicle_user_id = ?", userID)
	}
}

func ScopeByStatus(status VehicleStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("vehicle_status = ?", status)
	}
}
