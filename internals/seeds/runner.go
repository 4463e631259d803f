// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"ampliauto_backend/internals/configs"
	authModel "ampliauto_backend/internals/features/auth/model"
	authService "ampliauto_backend/internals/features/auth/service"
)

// Run cria a conta do administrador se ainda não existir. Só roda quando
// RUN_SEEDS=true e exige ADMIN_SEED_PASSWORD setado (nunca há senha padrão).
func Run(db *gorm.DB) {
	if !strings.EqualFold(os.Getenv("RUN_SEEDS"), "true") {
		return
	}

	email := strings.ToLower(strings.TrimSpace(configs.AdminEmail))
	var existing authModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("[SEED] admin %s já existe, nada a fazer", email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] consultar admin: %v", err)
		return
	}

	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		log.Println("[SEED] ADMIN_SEED_PASSWORD não definido, pulando seed do admin")
		return
	}
	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED ERROR] hash da senha do admin: %v", err)
		return
	}

	admin := authModel.UserModel{
		UserName:     "Administrador",
		UserEmail:    email,
		UserPassword: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] criar admin: %v", err)
		return
	}
	log.Printf("[SEED] admin %s criado", email)
}
