package service

import (
	"testing"
	"time"

	model "ampliauto_backend/internals/features/finance/model"
)

func TestLedgerBalanceSignedSum(t *testing.T) {
	entries := []model.CashLedgerModel{
		{LedgerType: model.LedgerEntrada, LedgerAmount: 300},
		{LedgerType: model.LedgerSaida, LedgerAmount: 120.50},
		{LedgerType: model.LedgerEntrada, LedgerAmount: 50},
	}
	if got := LedgerBalance(entries); got != 229.50 {
		t.Fatalf("LedgerBalance = %v, want 229.50", got)
	}
}

func TestLedgerBalanceOrderIndependent(t *testing.T) {
	a := []model.CashLedgerModel{
		{LedgerType: model.LedgerEntrada, LedgerAmount: 100},
		{LedgerType: model.LedgerSaida, LedgerAmount: 40},
		{LedgerType: model.LedgerEntrada, LedgerAmount: 10},
	}
	b := []model.CashLedgerModel{a[2], a[0], a[1]}
	if LedgerBalance(a) != LedgerBalance(b) {
		t.Fatalf("balance must not depend on entry order")
	}
}

func TestLedgerBalanceEmpty(t *testing.T) {
	if got := LedgerBalance(nil); got != 0 {
		t.Fatalf("LedgerBalance(nil) = %v, want 0", got)
	}
}

func TestIsOverdueIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	yesterday := time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)
	if !IsOverdue(yesterday, today) {
		t.Fatalf("due yesterday should be overdue")
	}

	sameDayLater := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)
	if IsOverdue(sameDayLater, today) {
		t.Fatalf("due today is not overdue, regardless of hour")
	}
	if !IsDueToday(sameDayLater, today) {
		t.Fatalf("same calendar day should count as due today")
	}

	tomorrow := time.Date(2024, 6, 11, 0, 1, 0, 0, time.UTC)
	if IsOverdue(tomorrow, today) || IsDueToday(tomorrow, today) {
		t.Fatalf("due tomorrow is neither overdue nor due today")
	}
}

func TestCountOverdueAndDueTodayOnlyOpen(t *testing.T) {
	today := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

	payables := []model.PayableModel{
		{PayableStatus: model.PayableAberto, PayableDueDate: day(9)},  // vencida
		{PayableStatus: model.PayableAberto, PayableDueDate: day(10)}, // vence hoje
		{PayableStatus: model.PayableAberto, PayableDueDate: day(11)}, // futura
		{PayableStatus: model.PayablePago, PayableDueDate: day(1)},    // paga, ignora
	}

	if got := CountOverdue(payables, today); got != 1 {
		t.Fatalf("CountOverdue = %d, want 1", got)
	}
	if got := CountDueToday(payables, today); got != 1 {
		t.Fatalf("CountDueToday = %d, want 1", got)
	}
}
