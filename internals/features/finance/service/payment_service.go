// file: internals/features/finance/service/payment_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	model "ampliauto_backend/internals/features/finance/model"
)

// ErrAlreadyPaid: a conta já foi quitada; pagar de novo duplicaria o caixa.
var ErrAlreadyPaid = errors.New("conta já está paga")

/* =========================
   Derivação dos lançamentos
   ========================= */

// LedgerEntryForReceivable monta o lançamento ENTRADA que espelha a conta a
// receber no momento do pagamento.
func LedgerEntryForReceivable(r *model.ReceivableModel, now time.Time) model.CashLedgerModel {
	desc := fmt.Sprintf("Recebimento %s", r.ReceivablePayerName)
	src := model.LedgerSourceReceivable
	return model.CashLedgerModel{
		LedgerUserID:      r.ReceivableUserID,
		LedgerType:        model.LedgerEntrada,
		LedgerAmount:      r.ReceivableAmount,
		LedgerDescription: &desc,
		LedgerSource:      &src,
		LedgerOccurredAt:  now,
	}
}

// LedgerEntryForPayable monta o lançamento SAIDA simétrico.
func LedgerEntryForPayable(p *model.PayableModel, now time.Time) model.CashLedgerModel {
	desc := fmt.Sprintf("Pagamento %s", p.PayableDescription)
	src := model.LedgerSourcePayable
	return model.CashLedgerModel{
		LedgerUserID:      p.PayableUserID,
		LedgerType:        model.LedgerSaida,
		LedgerAmount:      p.PayableAmount,
		LedgerDescription: &desc,
		LedgerSource:      &src,
		LedgerOccurredAt:  now,
	}
}

/* =========================
   Pagamento (transacional)
   ========================= */

// MarkReceivablePaid quita a conta a receber e grava o lançamento de caixa
// numa única transação: ou os dois writes entram, ou nenhum.
func MarkReceivablePaid(db *gorm.DB, r *model.ReceivableModel, now time.Time) error {
	if r.ReceivableStatus != model.ReceivableAberto {
		return ErrAlreadyPaid
	}
	return db.Transaction(func(tx *gorm.DB) error {
		paidAt := now
		res := tx.Model(&model.ReceivableModel{}).
			Where("receivable_id = ? AND receivable_status = ?", r.ReceivableID, model.ReceivableAberto).
			Updates(map[string]any{
				"receivable_status":  model.ReceivablePago,
				"receivable_paid_at": paidAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}
		entry := LedgerEntryForReceivable(r, now)
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		r.ReceivableStatus = model.ReceivablePago
		r.ReceivablePaidAt = &paidAt
		return nil
	})
}

// MarkPayablePaid: simétrico, lançamento SAIDA.
func MarkPayablePaid(db *gorm.DB, p *model.PayableModel, now time.Time) error {
	if p.PayableStatus != model.PayableAberto {
		return ErrAlreadyPaid
	}
	return db.Transaction(func(tx *gorm.DB) error {
		paidAt := now
		res := tx.Model(&model.PayableModel{}).
			Where("payable_id = ? AND payable_status = ?", p.PayableID, model.PayableAberto).
			Updates(map[string]any{
				"payable_status":  model.PayablePago,
				"payable_paid_at": paidAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}
		entry := LedgerEntryForPayable(p, now)
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		p.PayableStatus = model.PayablePago
		p.PayablePaidAt = &paidAt
		return nil
	})
}
