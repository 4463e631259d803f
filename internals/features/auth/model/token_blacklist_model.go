// file: internals/features/auth/model/token_blacklist_model.go
package model

import (
	"time"
)

// TokenBlacklistModel: access tokens revogados no logout (ou derrubados pelo
// gate de admin). O scheduler limpa os expirados periodicamente.
type TokenBlacklistModel struct {
	BlacklistID        uint      `json:"blacklist_id" gorm:"column:blacklist_id;primaryKey"`
	BlacklistToken     string    `json:"blacklist_token" gorm:"column:blacklist_token;type:text;not null;unique"`
	BlacklistExpiredAt time.Time `json:"blacklist_expired_at" gorm:"column:blacklist_expired_at;type:timestamptz;not null;index"`
	BlacklistCreatedAt time.Time `json:"blacklist_created_at" gorm:"column:blacklist_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
