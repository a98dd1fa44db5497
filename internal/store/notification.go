package store

import (
	"fmt"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"gorm.io/gorm"
)

// Notifications is the append-only outbox read back by polling.
type Notifications struct {
	DB       *gorm.DB
	PageSize int // most recent N returned per poll
}

func NewNotifications(db *gorm.DB, pageSize int) *Notifications {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Notifications{DB: db, PageSize: pageSize}
}

// Post appends a message for the user. There is no update or delete.
func (s *Notifications) Post(userID uint, message, typ string) (*models.Notification, error) {
	if typ == "" {
		typ = "booking"
	}
	n := models.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &n, nil
}

// ListForUser returns the user's most recent notifications, newest first.
func (s *Notifications) ListForUser(userID uint) ([]models.Notification, error) {
	var ns []models.Notification
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(s.PageSize).
		Find(&ns).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return ns, nil
}
