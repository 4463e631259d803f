// file: internals/features/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: users
   ========================= */

// UserModel: conta local com senha bcrypt. O acesso ao painel em si é
// decidido pelo gate de e-mail do admin, não por papel/role.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(80);not null"`
	UserEmail    string    `json:"user_email" gorm:"column:user_email;type:varchar(160);not null;uniqueIndex"`
	UserPassword string    `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
}

func (UserModel) TableName() string { return "users" }
