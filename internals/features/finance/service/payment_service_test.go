package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/finance/model"
)

func TestLedgerEntryForReceivable(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	r := &model.ReceivableModel{
		ReceivableUserID:    userID,
		ReceivablePayerName: "Maria Souza",
		ReceivableAmount:    300,
	}

	e := LedgerEntryForReceivable(r, now)
	if e.LedgerType != model.LedgerEntrada {
		t.Fatalf("type = %s, want ENTRADA", e.LedgerType)
	}
	if e.LedgerAmount != 300 {
		t.Fatalf("amount = %v, want 300", e.LedgerAmount)
	}
	if e.LedgerUserID != userID {
		t.Fatalf("entry must belong to the receivable owner")
	}
	if e.LedgerDescription == nil || *e.LedgerDescription != "Recebimento Maria Souza" {
		t.Fatalf("description = %v", e.LedgerDescription)
	}
	if e.LedgerSource == nil || *e.LedgerSource != model.LedgerSourceReceivable {
		t.Fatalf("source = %v", e.LedgerSource)
	}
	if !e.LedgerOccurredAt.Equal(now) {
		t.Fatalf("occurred_at = %v, want %v", e.LedgerOccurredAt, now)
	}
}

func TestLedgerEntryForPayable(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	p := &model.PayableModel{
		PayableUserID:      userID,
		PayableDescription: "Aluguel do pátio",
		PayableAmount:      1500,
	}

	e := LedgerEntryForPayable(p, now)
	if e.LedgerType != model.LedgerSaida {
		t.Fatalf("type = %s, want SAIDA", e.LedgerType)
	}
	if e.LedgerAmount != 1500 {
		t.Fatalf("amount = %v, want 1500", e.LedgerAmount)
	}
	if e.LedgerDescription == nil || *e.LedgerDescription != "Pagamento Aluguel do pátio" {
		t.Fatalf("description = %v", e.LedgerDescription)
	}
	if e.LedgerSource == nil || *e.LedgerSource != model.LedgerSourcePayable {
		t.Fatalf("source = %v", e.LedgerSource)
	}
}
