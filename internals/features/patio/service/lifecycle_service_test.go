package service

import (
	"testing"
	"time"

	model "ampliauto_backend/internals/features/patio/model"
)

func newVehicle(status model.VehicleStatus) *model.VehicleModel {
	return &model.VehicleModel{
		VehiclePlate:     "ABC1D23",
		VehicleDailyRate: 100,
		VehicleEntryAt:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		VehicleStatus:    status,
	}
}

func TestCanTransitionForwardOnly(t *testing.T) {
	chain := []model.VehicleStatus{
		model.StatusNoPatio,
		model.StatusLiberacaoSolicitada,
		model.StatusLiberacaoConfirmada,
		model.StatusRemocaoConfirmada,
		model.StatusRemovido,
	}
	for i, from := range chain {
		for j, to := range chain {
			got := CanTransition(from, to)
			want := j == i+1
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition(model.VehicleStatus("QUALQUER"), model.StatusNoPatio) {
		t.Fatalf("expected unknown status to reject transitions")
	}
}

func TestApplyReleaseRequested(t *testing.T) {
	v := newVehicle(model.StatusNoPatio)
	if err := ApplyReleaseRequested(v, " João "); err != nil {
		t.Fatalf("ApplyReleaseRequested: %v", err)
	}
	if v.VehicleStatus != model.StatusLiberacaoSolicitada {
		t.Fatalf("status = %s, want %s", v.VehicleStatus, model.StatusLiberacaoSolicitada)
	}
	if v.VehicleReleaseRequestedBy == nil || *v.VehicleReleaseRequestedBy != "João" {
		t.Fatalf("requested_by not recorded (trimmed)")
	}
}

func TestApplyReleaseRequestedRejectsEmptyName(t *testing.T) {
	v := newVehicle(model.StatusNoPatio)
	if err := ApplyReleaseRequested(v, "   "); err == nil {
		t.Fatalf("expected error for empty requester name")
	}
	if v.VehicleStatus != model.StatusNoPatio {
		t.Fatalf("status should not change on validation error")
	}
}

func TestApplyReleaseRequestedWrongState(t *testing.T) {
	v := newVehicle(model.StatusRemovido)
	if err := ApplyReleaseRequested(v, "João"); err == nil {
		t.Fatalf("expected transition error from REMOVIDO")
	}
}

func TestApplyReleaseConfirmed(t *testing.T) {
	v := newVehicle(model.StatusLiberacaoSolicitada)
	due := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	if err := ApplyReleaseConfirmed(v, "Maria", due, "Fernando"); err != nil {
		t.Fatalf("ApplyReleaseConfirmed: %v", err)
	}
	if v.VehicleStatus != model.StatusLiberacaoConfirmada {
		t.Fatalf("status = %s, want %s", v.VehicleStatus, model.StatusLiberacaoConfirmada)
	}
	if v.VehiclePayerName == nil || *v.VehiclePayerName != "Maria" {
		t.Fatalf("payer name not recorded")
	}
	if v.VehicleReleaseDueDate == nil || !v.VehicleReleaseDueDate.Equal(due) {
		t.Fatalf("due date not recorded")
	}
}

func TestApplyReleaseConfirmedRequiresPayerAndDueDate(t *testing.T) {
	v := newVehicle(model.StatusLiberacaoSolicitada)
	if err := ApplyReleaseConfirmed(v, "", time.Now(), ""); err == nil {
		t.Fatalf("expected error for empty payer")
	}
	if err := ApplyReleaseConfirmed(v, "Maria", time.Time{}, ""); err == nil {
		t.Fatalf("expected error for zero due date")
	}
}

func TestApplyRemovedIsTerminal(t *testing.T) {
	v := newVehicle(model.StatusRemocaoConfirmada)
	removedAt := time.Date(2024, 6, 21, 14, 0, 0, 0, time.UTC)
	if err := ApplyRemoved(v, removedAt, "Carlos"); err != nil {
		t.Fatalf("ApplyRemoved: %v", err)
	}
	if v.VehicleStatus != model.StatusRemovido {
		t.Fatalf("status = %s, want REMOVIDO", v.VehicleStatus)
	}
	if v.VehicleRemovedAt == nil || !v.VehicleRemovedAt.Equal(removedAt) {
		t.Fatalf("removed_at not recorded")
	}
	if err := ApplyReleaseRequested(v, "João"); err == nil {
		t.Fatalf("REMOVIDO must not transition anywhere")
	}
}

func TestDaysInPatio(t *testing.T) {
	entry := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", entry, 1},
		{"few hours later", entry.Add(5 * time.Hour), 1},
		{"exactly 24h", entry.Add(24 * time.Hour), 1},
		{"just past 24h", entry.Add(24*time.Hour + time.Minute), 2},
		{"exactly 3 days", entry.Add(72 * time.Hour), 3},
		{"3 days and change", entry.Add(72*time.Hour + time.Second), 4},
		{"clock skew before entry", entry.Add(-time.Hour), 1},
	}
	for _, tc := range cases {
		if got := DaysInPatio(entry, tc.now); got != tc.want {
			t.Errorf("%s: DaysInPatio = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestReleaseAmount(t *testing.T) {
	v := newVehicle(model.StatusLiberacaoSolicitada)
	v.VehicleDailyRate = 100

	now := v.VehicleEntryAt.Add(2*24*time.Hour + 3*time.Hour) // 3 diárias
	if got := ReleaseAmount(v, now); got != 300 {
		t.Fatalf("ReleaseAmount = %v, want 300", got)
	}

	sameDay := v.VehicleEntryAt.Add(2 * time.Hour)
	if got := ReleaseAmount(v, sameDay); got != 100 {
		t.Fatalf("ReleaseAmount same day = %v, want 100 (mínimo 1 diária)", got)
	}
}
