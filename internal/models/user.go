package models

import "time"

// User represents a registered guest account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Fullname     string `gorm:"size:64;not null"`
	Username     string `gorm:"size:64;index"`
	Email        string `gorm:"size:128;uniqueIndex;not null"` // stored lowercase
	PasswordHash string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:32"`
	ProfileImage string `gorm:"size:255;default:/images/default-avatar.png"`
	Role         string `gorm:"size:16;default:user"` // user / admin, informational only
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
