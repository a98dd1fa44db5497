package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an isolated in-memory database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Notification{},
		&models.Session{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func day(offset int) time.Time {
	now := time.Now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return base.AddDate(0, 0, offset)
}

func registerTestUser(t *testing.T, users *Users) *models.User {
	t.Helper()
	u, err := users.Register("Juan Dela Cruz", "juan@example.com", "Secret123")
	if err != nil {
		t.Fatalf("register test user: %v", err)
	}
	return u
}
