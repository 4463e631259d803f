package dto

import (
	"testing"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/partners/model"
)

func TestCreatePartnerRequestToModel(t *testing.T) {
	userID := uuid.New()
	cpf := "123.456.789-00"
	req := CreatePartnerRequest{
		PartnerName: "  Oficina do Zé  ",
		PartnerCPF:  &cpf,
	}

	p := req.ToModel(userID)
	if p.PartnerName != "Oficina do Zé" {
		t.Fatalf("name = %q, want trimmed", p.PartnerName)
	}
	if p.PartnerUserID != userID {
		t.Fatalf("owner not set")
	}
	if p.PartnerCPF == nil || *p.PartnerCPF != cpf {
		t.Fatalf("cpf not carried over")
	}
	if p.PartnerEmail != nil || p.PartnerContact != nil {
		t.Fatalf("optional fields should stay nil when omitted")
	}
}

func TestUpdatePartnerRequestApplyTo(t *testing.T) {
	oldCPF := "111.111.111-11"
	p := &model.PartnerModel{
		PartnerUserID: uuid.New(),
		PartnerName:   "Antigo",
		PartnerCPF:    &oldCPF,
	}

	contact := "(11) 99999-0000"
	req := UpdatePartnerRequest{
		PartnerName:    " Novo Nome ",
		PartnerContact: &contact,
	}
	req.ApplyTo(p)

	if p.PartnerName != "Novo Nome" {
		t.Fatalf("name = %q, want trimmed Novo Nome", p.PartnerName)
	}
	// update substitui o registro inteiro, campo omitido vira nulo
	if p.PartnerCPF != nil {
		t.Fatalf("cpf should be cleared when omitted in update")
	}
	if p.PartnerContact == nil || *p.PartnerContact != contact {
		t.Fatalf("contact not applied")
	}
}
