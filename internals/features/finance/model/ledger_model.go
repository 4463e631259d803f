// file: internals/features/finance/model/ledger_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerType: sentido do movimento de caixa.
type LedgerType string

const (
	LedgerEntrada LedgerType = "ENTRADA"
	LedgerSaida   LedgerType = "SAIDA"
)

// Origem dos lançamentos automáticos.
const (
	LedgerSourceReceivable = "accounts_receivable"
	LedgerSourcePayable    = "accounts_payable"
)

/* =========================
   Model: cash_ledger
   ========================= */

// CashLedgerModel é append-only: não existe update nem delete de lançamento.
// O saldo nunca é armazenado, só derivado da soma assinada.
type CashLedgerModel struct {
	LedgerID     uuid.UUID `json:"ledger_id" gorm:"column:ledger_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LedgerUserID uuid.UUID `json:"ledger_user_id" gorm:"column:ledger_user_id;type:uuid;not null;index"`

	LedgerType        LedgerType `json:"ledger_type" gorm:"column:ledger_type;type:varchar(8);not null;index"`
	LedgerAmount      float64    `json:"ledger_amount" gorm:"column:ledger_amount;type:numeric(12,2);not null"`
	LedgerDescription *string    `json:"ledger_description,omitempty" gorm:"column:ledger_description;type:varchar(255)"`
	LedgerSource      *string    `json:"ledger_source,omitempty" gorm:"column:ledger_source;type:varchar(40)"`

	LedgerOccurredAt time.Time `json:"ledger_occurred_at" gorm:"column:ledger_occurred_at;type:timestamptz;not null;index"`
	LedgerCreatedAt  time.Time `json:"ledger_created_at" gorm:"column:ledger_created_at;type:timestamptz;not null;default:now()"`
}

func (CashLedgerModel) TableName() string { return "cash_ledger" }

func ScopeLedgerByOwner(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ledger_user_id = ?", userID)
	}
}
