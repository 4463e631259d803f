// file: internals/features/partners/model/partner_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerModel: parceiro/localizador que indica veículos para o pátio.
// Só histórico de relacionamento; a referência em vehicles é fraca.
type PartnerModel struct {
	PartnerID     uuid.UUID `json:"partner_id" gorm:"column:partner_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PartnerUserID uuid.UUID `json:"partner_user_id" gorm:"column:partner_user_id;type:uuid;not null;index"`

	PartnerName    string  `json:"partner_name" gorm:"column:partner_name;type:varchar(120);not null"`
	PartnerCPF     *string `json:"partner_cpf,omitempty" gorm:"column:partner_cpf;type:varchar(14)"`
	PartnerEmail   *string `json:"partner_email,omitempty" gorm:"column:partner_email;type:varchar(120)"`
	PartnerContact *string `json:"partner_contact,omitempty" gorm:"column:partner_contact;type:varchar(60)"`

	PartnerCreatedAt time.Time `json:"partner_created_at" gorm:"column:partner_created_at;type:timestamptz;not null;default:now()"`
}

func (PartnerModel) TableName() string { return "partners" }

func ScopeByOwner(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("partner_user_id = ?", userID)
	}
}
