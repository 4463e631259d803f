package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/patio/model"
)

func TestCreateVehicleRequestToModel(t *testing.T) {
	userID := uuid.New()
	req := CreateVehicleRequest{
		VehiclePlate:     "  abc1d23 ",
		VehicleDailyRate: 120,
		VehicleEntryAt:   "2024-06-10T14:30:00Z",
	}

	v, err := req.ToModel(userID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if v.VehiclePlate != "ABC1D23" {
		t.Fatalf("plate = %q, want uppercased/trimmed ABC1D23", v.VehiclePlate)
	}
	if v.VehicleStatus != model.StatusNoPatio {
		t.Fatalf("status = %s, want NO_PATIO on intake", v.VehicleStatus)
	}
	if v.VehicleUserID != userID {
		t.Fatalf("owner not set")
	}
	want := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	if !v.VehicleEntryAt.Equal(want) {
		t.Fatalf("entry_at = %v, want %v", v.VehicleEntryAt, want)
	}
}

func TestCreateVehicleRequestToModelBadDate(t *testing.T) {
	req := CreateVehicleRequest{
		VehiclePlate:     "ABC1D23",
		VehicleDailyRate: 120,
		VehicleEntryAt:   "10/06/2024",
	}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Fatalf("expected error for non-RFC3339 entry_at")
	}
}

func TestFromModelVehicleDerivedFields(t *testing.T) {
	entry := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	v := &model.VehicleModel{
		VehiclePlate:     "ABC1D23",
		VehicleDailyRate: 100,
		VehicleEntryAt:   entry,
		VehicleStatus:    model.StatusNoPatio,
	}

	now := entry.Add(2*24*time.Hour + time.Hour) // 3ª diária em curso
	resp := FromModelVehicle(v, now)
	if resp.VehicleDaysInPatio != 3 {
		t.Fatalf("days = %d, want 3", resp.VehicleDaysInPatio)
	}
	if resp.VehicleAccruedAmount != 300 {
		t.Fatalf("accrued = %v, want 300", resp.VehicleAccruedAmount)
	}
}
