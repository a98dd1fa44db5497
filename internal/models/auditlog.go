package models

import "time"

// AuditLog records administrative actions for later review.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	AdminName string `gorm:"size:64;index"`
	Method    string `gorm:"size:16"`
	Path      string `gorm:"size:255"`
	Action    string `gorm:"size:255"` // e.g. "accept booking 12"
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
