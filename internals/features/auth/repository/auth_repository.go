// file: internals/features/auth/repository/auth_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	authModel "ampliauto_backend/internals/features/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		BlacklistToken:     token,
		BlacklistExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var exists bool
	err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE blacklist_token = ? AND blacklist_expired_at > now())`,
		token,
	).Scan(&exists).Error
	return exists, err
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE blacklist_expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
