// file: internals/features/settings/dto/settings_dto.go
package dto

import (
	"github.com/google/uuid"

	model "ampliauto_backend/internals/features/settings/model"
)

// UpsertSettingsRequest: a tela de configurações salva tudo de uma vez.
type UpsertSettingsRequest struct {
	SettingsCompanyName *string `json:"settings_company_name" validate:"omitempty,max=160"`
	SettingsCNPJ        *string `json:"settings_cnpj" validate:"omitempty,max=18"`
	SettingsBankDetails *string `json:"settings_bank_details"`

	SettingsTemplateBilling *string `json:"settings_template_billing"`
	SettingsTemplateInvoice *string `json:"settings_template_invoice"`
}

func (r *UpsertSettingsRequest) ToModel(userID uuid.UUID) *model.SettingsModel {
	return &model.SettingsModel{
		SettingsUserID:          userID,
		SettingsCompanyName:     r.SettingsCompanyName,
		SettingsCNPJ:            r.SettingsCNPJ,
		SettingsBankDetails:     r.SettingsBankDetails,
		SettingsTemplateBilling: r.SettingsTemplateBilling,
		SettingsTemplateInvoice: r.SettingsTemplateInvoice,
	}
}
