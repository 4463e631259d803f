// file: internals/features/finance/model/payable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayableStatus string

const (
	PayableAberto PayableStatus = "ABERTO"
	PayablePago   PayableStatus = "PAGO"
)

// PayableType: natureza da conta a pagar.
type PayableType string

const (
	PayableUnica      PayableType = "unica"
	PayableRecorrente PayableType = "recorrente"
	PayableParcelada  PayableType = "parcelada"
)

/* =========================
   Model: accounts_payable
   ========================= */

type PayableModel struct {
	PayableID     uuid.UUID `json:"payable_id" gorm:"column:payable_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PayableUserID uuid.UUID `json:"payable_user_id" gorm:"column:payable_user_id;type:uuid;not null;index"`

	PayableType        *PayableType `json:"payable_type,omitempty" gorm:"column:payable_type;type:varchar(12)"`
	PayableDescription string       `json:"payable_description" gorm:"column:payable_description;type:varchar(255);not null"`
	PayableAmount      float64      `json:"payable_amount" gorm:"column:payable_amount;type:numeric(12,2);not null"`
	PayableDueDate     time.Time    `json:"payable_due_date" gorm:"column:payable_due_date;type:date;not null"`

	PayableStatus PayableStatus `json:"payable_status" gorm:"column:payable_status;type:varchar(12);not null;default:'ABERTO';index"`
	PayablePaidAt *time.Time    `json:"payable_paid_at,omitempty" gorm:"column:payable_paid_at;type:timestamptz"`

	PayableCreatedAt time.Time `json:"payable_created_at" gorm:"column:payable_created_at;type:timestamptz;not null;default:now()"`
}

func (PayableModel) TableName() string { return "accounts_payable" }

/* =========================
   Scopes
   ========================= */

func ScopePayableByOwner(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payable_user_id = ?", userID)
	}
}

func ScopePayableAberto(db *gorm.DB) *gorm.DB {
	return db.Where("payable_status = ?", PayableAberto)
}
