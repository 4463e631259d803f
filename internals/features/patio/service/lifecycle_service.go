// file: internals/features/patio/service/lifecycle_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	model "ampliauto_backend/internals/features/patio/model"
)

// AllowTransition define o fluxo permitido do status do veículo.
// A sequência é estritamente linear: nunca volta, nunca pula etapa.
var AllowTransition = map[model.VehicleStatus][]model.VehicleStatus{
	model.StatusNoPatio:             {model.StatusLiberacaoSolicitada},
	model.StatusLiberacaoSolicitada: {model.StatusLiberacaoConfirmada},
	model.StatusLiberacaoConfirmada: {model.StatusRemocaoConfirmada},
	model.StatusRemocaoConfirmada:   {model.StatusRemovido},
	// terminal: REMOVIDO não flui para lugar nenhum
	model.StatusRemovido: {},
}

// CanTransition diz se from -> to é uma transição válida.
func CanTransition(from, to model.VehicleStatus) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func transitionErr(from, to model.VehicleStatus) error {
	return fmt.Errorf("transição de status inválida: %s -> %s", from, to)
}

/* =========================
   Transições (com auditoria)
   ========================= */

// ApplyReleaseRequested: NO_PATIO -> LIBERACAO_SOLICITADA
func ApplyReleaseRequested(v *model.VehicleModel, requestedBy string) error {
	if v == nil {
		return fmt.Errorf("veículo nulo")
	}
	requestedBy = strings.TrimSpace(requestedBy)
	if requestedBy == "" {
		return fmt.Errorf("nome do solicitante é obrigatório")
	}
	if !CanTransition(v.VehicleStatus, model.StatusLiberacaoSolicitada) {
		return transitionErr(v.VehicleStatus, model.StatusLiberacaoSolicitada)
	}
	v.VehicleStatus = model.StatusLiberacaoSolicitada
	v.VehicleReleaseRequestedBy = &requestedBy
	return nil
}

// ApplyReleaseConfirmed: LIBERACAO_SOLICITADA -> LIBERACAO_CONFIRMADA.
// A cobrança (contas a receber) é criada pelo chamador na mesma transação.
func ApplyReleaseConfirmed(v *model.VehicleModel, payerName string, dueDate time.Time, confirmedBy string) error {
	if v == nil {
		return fmt.Errorf("veículo nulo")
	}
	payerName = strings.TrimSpace(payerName)
	if payerName == "" {
		return fmt.Errorf("nome do pagador é obrigatório")
	}
	if dueDate.IsZero() {
		return fmt.Errorf("data de vencimento é obrigatória")
	}
	if !CanTransition(v.VehicleStatus, model.StatusLiberacaoConfirmada) {
		return transitionErr(v.VehicleStatus, model.StatusLiberacaoConfirmada)
	}
	v.VehicleStatus = model.StatusLiberacaoConfirmada
	v.VehiclePayerName = &payerName
	v.VehicleReleaseDueDate = &dueDate
	if confirmedBy = strings.TrimSpace(confirmedBy); confirmedBy != "" {
		v.VehicleReleaseConfirmedBy = &confirmedBy
	}
	return nil
}

// ApplyRemovalConfirmed: LIBERACAO_CONFIRMADA -> REMOCAO_CONFIRMADA
func ApplyRemovalConfirmed(v *model.VehicleModel, confirmedBy string) error {
	if v == nil {
		return fmt.Errorf("veículo nulo")
	}
	confirmedBy = strings.TrimSpace(confirmedBy)
	if confirmedBy == "" {
		return fmt.Errorf("nome de quem confirmou é obrigatório")
	}
	if !CanTransition(v.VehicleStatus, model.StatusRemocaoConfirmada) {
		return transitionErr(v.VehicleStatus, model.StatusRemocaoConfirmada)
	}
	v.VehicleStatus = model.StatusRemocaoConfirmada
	v.VehicleRemovalConfirmedBy = &confirmedBy
	return nil
}

// ApplyRemoved: REMOCAO_CONFIRMADA -> REMOVIDO (terminal)
func ApplyRemoved(v *model.VehicleModel, removedAt time.Time, removedBy string) error {
	if v == nil {
		return fmt.Errorf("veículo nulo")
	}
	removedBy = strings.TrimSpace(removedBy)
	if removedBy == "" {
		return fmt.Errorf("nome de quem removeu é obrigatório")
	}
	if removedAt.IsZero() {
		return fmt.Errorf("data/hora da remoção é obrigatória")
	}
	if !CanTransition(v.VehicleStatus, model.StatusRemovido) {
		return transitionErr(v.VehicleStatus, model.StatusRemovido)
	}
	v.VehicleStatus = model.StatusRemovido
	v.VehicleRemovedAt = &removedAt
	v.VehicleRemovedBy = &removedBy
	return nil
}

/* =========================
   Diárias e valor gerado
   ========================= */

// DaysInPatio conta as diárias acumuladas: teto dos dias corridos desde a
// entrada, mínimo 1 (veículo que entrou hoje já conta uma diária).
func DaysInPatio(entryAt, now time.Time) int {
	elapsed := now.Sub(entryAt)
	if elapsed <= 0 {
		return 1
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ReleaseAmount é o valor da cobrança no momento da confirmação da liberação.
// É um snapshot: fica congelado na conta a receber, nunca é recalculado.
func ReleaseAmount(v *model.VehicleModel, now time.Time) float64 {
	return float64(DaysInPatio(v.VehicleEntryAt, now)) * v.VehicleDailyRate
}
