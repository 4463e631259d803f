// file: internals/features/finance/service/metrics_service.go
package service

import (
	"time"

	model "ampliauto_backend/internals/features/finance/model"
)

// LedgerBalance: soma assinada de todos os lançamentos (ENTRADA soma,
// SAIDA subtrai). Independente de ordem; recalculada a cada leitura.
func LedgerBalance(entries []model.CashLedgerModel) float64 {
	var balance float64
	for _, e := range entries {
		if e.LedgerType == model.LedgerEntrada {
			balance += e.LedgerAmount
		} else {
			balance -= e.LedgerAmount
		}
	}
	return balance
}

// sameCalendarDay ignora hora do dia: só compara a data do calendário.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsOverdue: vencimento estritamente anterior à data de hoje.
func IsOverdue(dueDate, today time.Time) bool {
	dy, dm, dd := dueDate.Date()
	ty, tm, td := today.Date()
	due := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	ref := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return due.Before(ref)
}

// IsDueToday: vence na data de hoje.
func IsDueToday(dueDate, today time.Time) bool {
	return sameCalendarDay(dueDate, today)
}

// CountOverdue / CountDueToday contam só as contas ABERTO.
func CountOverdue(payables []model.PayableModel, today time.Time) int {
	n := 0
	for _, p := range payables {
		if p.PayableStatus == model.PayableAberto && IsOverdue(p.PayableDueDate, today) {
			n++
		}
	}
	return n
}

func CountDueToday(payables []model.PayableModel, today time.Time) int {
	n := 0
	for _, p := range payables {
		if p.PayableStatus == model.PayableAberto && IsDueToday(p.PayableDueDate, today) {
			n++
		}
	}
	return n
}
