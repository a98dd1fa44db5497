package models

import "time"

// Notification is a one-way message to a user, appended by booking
// transitions and read back by polling. No update beyond creation.
type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Message   string    `gorm:"size:255;not null"`
	Type      string    `gorm:"size:32;default:booking"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
