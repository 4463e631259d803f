// file: internals/features/patio/dto/vehicle_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/patio/model"
	service "ampliauto_backend/internals/features/patio/service"
)

/* =========================================================
   REQUEST: Create / Update
   ========================================================= */

type CreateVehicleRequest struct {
	VehiclePlate     string  `json:"vehicle_plate" validate:"required,max=12"`
	VehicleBrand     *string `json:"vehicle_brand" validate:"omitempty,max=60"`
	VehicleModelName *string `json:"vehicle_model" validate:"omitempty,max=60"`

	VehicleDailyRate float64 `json:"vehicle_daily_rate" validate:"required,gt=0"`

	// RFC3339 (ex.: 2024-06-10T14:30:00Z)
	VehicleEntryAt string `json:"vehicle_entry_at" validate:"required"`

	VehiclePartnerID *uuid.UUID `json:"vehicle_partner_id"`
	VehicleNotes     *string    `json:"vehicle_notes"`
}

func (r *CreateVehicleRequest) ToModel(userID uuid.UUID) (*model.VehicleModel, error) {
	entryAt, err := time.Parse(time.RFC3339, r.VehicleEntryAt)
	if err != nil {
		return nil, err
	}
	v := &model.VehicleModel{
		VehicleUserID:    userID,
		VehiclePartnerID: r.VehiclePartnerID,
		VehiclePlate:     strings.ToUpper(strings.TrimSpace(r.VehiclePlate)),
		VehicleBrand:     r.VehicleBrand,
		VehicleModelName: r.VehicleModelName,
		VehicleDailyRate: r.VehicleDailyRate,
		VehicleEntryAt:   entryAt,
		VehicleStatus:    model.StatusNoPatio,
		VehicleNotes:     r.VehicleNotes,
	}
	return v, nil
}

// UpdateVehicleRequest: edição de cadastro, permitida em qualquer status.
// Os campos de auditoria do ciclo de vida nunca passam por aqui.
type UpdateVehicleRequest struct {
	VehiclePlate     string  `json:"vehicle_plate" validate:"required,max=12"`
	VehicleBrand     *string `json:"vehicle_brand" validate:"omitempty,max=60"`
	VehicleModelName *string `json:"vehicle_model" validate:"omitempty,max=60"`

	VehicleDailyRate float64 `json:"vehicle_daily_rate" validate:"required,gt=0"`
	VehicleEntryAt   string  `json:"vehicle_entry_at" validate:"required"`

	VehiclePartnerID *uuid.UUID `json:"vehicle_partner_id"`
	VehicleNotes     *string    `json:"vehicle_notes"`
}

func (r *UpdateVehicleRequest) ApplyTo(v *model.VehicleModel) error {
	entryAt, err := time.Parse(time.RFC3339, r.VehicleEntryAt)
	if err != nil {
		return err
	}
	v.VehiclePlate = strings.ToUpper(strings.TrimSpace(r.VehiclePlate))
	v.VehicleBrand = r.VehicleBrand
	v.VehicleModelName = r.VehicleModelName
	v.VehicleDailyRate = r.VehicleDailyRate
	v.VehicleEntryAt = entryAt
	v.VehiclePartnerID = r.VehiclePartnerID
	v.VehicleNotes = r.VehicleNotes
	return nil
}

/* =========================================================
   REQUEST: transições do ciclo de vida
   ========================================================= */

type ReleaseRequestedRequest struct {
	RequestedBy string `json:"requested_by" validate:"required,max=120"`
}

type ReleaseConfirmedRequest struct {
	PayerName   string `json:"payer_name" validate:"required,max=120"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
	ConfirmedBy string `json:"confirmed_by" validate:"omitempty,max=120"`
}

type RemovalConfirmedRequest struct {
	ConfirmedBy string `json:"confirmed_by" validate:"required,max=120"`
}

type VehicleRemovedRequest struct {
	// RFC3339
	RemovedAt string `json:"removed_at" validate:"required"`
	RemovedBy string `json:"removed_by" validate:"required,max=120"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type VehicleResponse struct {
	model.VehicleModel

	// derivados, recalculados a cada leitura
	VehicleDaysInPatio   int     `json:"vehicle_days_in_patio"`
	VehicleAccruedAmount float64 `json:"vehicle_accrued_amount"`
}

func FromModelVehicle(v *model.VehicleModel, now time.Time) VehicleResponse {
	days := service.DaysInPatio(v.VehicleEntryAt, now)
	return VehicleResponse{
		VehicleModel:         *v,
		VehicleDaysInPatio:   days,
		VehicleAccruedAmount: float64(days) * v.VehicleDailyRate,
	}
}

func FromModelVehicles(vs []model.VehicleModel, now time.Time) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for i := range vs {
		out = append(out, FromModelVehicle(&vs[i], now))
	}
	return out
}
