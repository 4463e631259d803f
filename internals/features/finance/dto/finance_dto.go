// file: internals/features/finance/dto/finance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/finance/model"
)

/* =========================================================
   REQUEST: contas a pagar
   ========================================================= */

type CreatePayableRequest struct {
	PayableType        *string `json:"payable_type" validate:"omitempty,oneof=unica recorrente parcelada"`
	PayableDescription string  `json:"payable_description" validate:"required,max=255"`
	PayableAmount      float64 `json:"payable_amount" validate:"required,gt=0"`
	PayableDueDate     string  `json:"payable_due_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreatePayableRequest) ToModel(userID uuid.UUID) (*model.PayableModel, error) {
	dueDate, err := time.Parse("2006-01-02", r.PayableDueDate)
	if err != nil {
		return nil, err
	}
	p := &model.PayableModel{
		PayableUserID:      userID,
		PayableDescription: strings.TrimSpace(r.PayableDescription),
		PayableAmount:      r.PayableAmount,
		PayableDueDate:     dueDate,
		PayableStatus:      model.PayableAberto,
	}
	if r.PayableType != nil {
		t := model.PayableType(*r.PayableType)
		p.PayableType = &t
	}
	return p, nil
}

/* =========================================================
   RESPONSE: caixa + documentos
   ========================================================= */

// LedgerListResponse: lançamentos + saldo derivado (nunca armazenado).
type LedgerListResponse struct {
	Entries []model.CashLedgerModel `json:"entries"`
	Balance float64                 `json:"balance"`
}

// DocumentResponse: dados da cobrança/nota renderizados na tela de
// "gerar documento". O template vem das configurações, interpolado verbatim.
type DocumentResponse struct {
	ReceivableID uuid.UUID  `json:"receivable_id"`
	PayerName    string     `json:"payer_name"`
	Amount       float64    `json:"amount"`
	DueDate      string     `json:"due_date"`
	Status       string     `json:"status"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`

	VehiclePlate string `json:"vehicle_plate,omitempty"`
	VehicleBrand string `json:"vehicle_brand,omitempty"`
	VehicleModel string `json:"vehicle_model,omitempty"`

	CompanyName string `json:"company_name,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	BankDetails string `json:"bank_details,omitempty"`
	Template    string `json:"template"`
}
