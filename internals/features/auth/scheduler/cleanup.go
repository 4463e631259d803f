// file: internals/features/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "ampliauto_backend/internals/features/auth/repository"
)

// StartBlacklistCleanupScheduler remove periodicamente tokens revogados já
// expirados. Intervalo configurável via BLACKLIST_CLEANUP_INTERVAL_MINUTES
// (padrão: 60).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 60
		if val := os.Getenv("BLACKLIST_CLEANUP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		ticker := time.NewTicker(time.Duration(intervalMin) * time.Minute)
		defer ticker.Stop()

		for {
			log.Println("[CLEANUP] Limpando token_blacklist...")
			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] falha ao limpar blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token(s) expirados removidos", n)
			}
			<-ticker.C
		}
	}()
}
