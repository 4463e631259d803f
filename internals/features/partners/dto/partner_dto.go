// file: internals/features/partners/dto/partner_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/partners/model"
)

type CreatePartnerRequest struct {
	PartnerName    string  `json:"partner_name" validate:"required,max=120"`
	PartnerCPF     *string `json:"partner_cpf" validate:"omitempty,max=14"`
	PartnerEmail   *string `json:"partner_email" validate:"omitempty,email,max=120"`
	PartnerContact *string `json:"partner_contact" validate:"omitempty,max=60"`
}

func (r *CreatePartnerRequest) ToModel(userID uuid.UUID) *model.PartnerModel {
	return &model.PartnerModel{
		PartnerUserID:  userID,
		PartnerName:    strings.TrimSpace(r.PartnerName),
		PartnerCPF:     r.PartnerCPF,
		PartnerEmail:   r.PartnerEmail,
		PartnerContact: r.PartnerContact,
	}
}

type UpdatePartnerRequest struct {
	PartnerName    string  `json:"partner_name" validate:"required,max=120"`
	PartnerCPF     *string `json:"partner_cpf" validate:"omitempty,max=14"`
	PartnerEmail   *string `json:"partner_email" validate:"omitempty,email,max=120"`
	PartnerContact *string `json:"partner_contact" validate:"omitempty,max=60"`
}

func (r *UpdatePartnerRequest) ApplyTo(p *model.PartnerModel) {
	p.PartnerName = strings.TrimSpace(r.PartnerName)
	p.PartnerCPF = r.PartnerCPF
	p.PartnerEmail = r.PartnerEmail
	p.PartnerContact = r.PartnerContact
}
