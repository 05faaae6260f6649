package database

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobportal/internal/models"
)

// Connect opens the SQLite database file and creates any missing tables.
// Timestamps are written in UTC to match what the pages and API expose.
func Connect(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Infof("Database connection established (%s)", path)

	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.Notification{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	return db
}
