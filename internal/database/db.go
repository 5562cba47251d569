package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pharmachain-backend/internal/config"
	"pharmachain-backend/internal/models"
)

var DB *gorm.DB

// Init opens the relational database holding users and audit logs. The
// dashboard collections themselves live behind the injected key-value
// store, which may share this database or run on Redis.
func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	log.Println("database connected, migrations complete")
}
