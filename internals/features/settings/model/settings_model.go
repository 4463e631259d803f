// file: internals/features/settings/model/settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingsModel: singleton por admin (unique em settings_user_id).
// Os dois templates são texto livre, interpolados verbatim nos documentos.
type SettingsModel struct {
	SettingsID     uuid.UUID `json:"settings_id" gorm:"column:settings_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SettingsUserID uuid.UUID `json:"settings_user_id" gorm:"column:settings_user_id;type:uuid;not null;uniqueIndex"`

	SettingsCompanyName *string `json:"settings_company_name,omitempty" gorm:"column:settings_company_name;type:varchar(160)"`
	SettingsCNPJ        *string `json:"settings_cnpj,omitempty" gorm:"column:settings_cnpj;type:varchar(18)"`
	SettingsBankDetails *string `json:"settings_bank_details,omitempty" gorm:"column:settings_bank_details;type:text"`

	SettingsTemplateBilling *string `json:"settings_template_billing,omitempty" gorm:"column:settings_template_billing;type:text"`
	SettingsTemplateInvoice *string `json:"settings_template_invoice,omitempty" gorm:"column:settings_template_invoice;type:text"`

	SettingsCreatedAt time.Time `json:"settings_created_at" gorm:"column:settings_created_at;type:timestamptz;not null;default:now()"`
}

func (SettingsModel) TableName() string { return "settings" }
