package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestUpsertSettingsRequestToModel(t *testing.T) {
	userID := uuid.New()
	name := "AmpliAuto Pátio LTDA"
	tmpl := "Cobrança {{vehicle_plate}}"
	req := UpsertSettingsRequest{
		SettingsCompanyName:     &name,
		SettingsTemplateBilling: &tmpl,
	}

	s := req.ToModel(userID)
	if s.SettingsUserID != userID {
		t.Fatalf("settings_user_id not set")
	}
	if s.SettingsCompanyName == nil || *s.SettingsCompanyName != name {
		t.Fatalf("company name not carried over")
	}
	if s.SettingsTemplateBilling == nil || *s.SettingsTemplateBilling != tmpl {
		t.Fatalf("billing template not carried over")
	}
	if s.SettingsCNPJ != nil || s.SettingsBankDetails != nil || s.SettingsTemplateInvoice != nil {
		t.Fatalf("omitted fields should stay nil")
	}
}
