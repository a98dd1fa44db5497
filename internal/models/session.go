package models

import "time"

// Session stores per-browser state keyed by an opaque token. It carries two
// independent identity scopes: a user projection and an admin marker. Either
// or both may be set; route guards check them independently.
type Session struct {
	Token string `gorm:"primaryKey;size:64"` // opaque, e.g. UUID

	// user scope (minimal projection, not a foreign key join target)
	UserID       *uint  `gorm:"index"`
	UserFullname string `gorm:"size:64"`
	UserEmail    string `gorm:"size:128"`
	UserUsername string `gorm:"size:64"`

	// admin scope
	AdminName string `gorm:"size:64"`

	// one-shot flash message, consumed on next page render
	Flash     string `gorm:"size:255"`
	FlashKind string `gorm:"size:16"` // success / error

	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasUser reports whether the user scope is set.
func (s *Session) HasUser() bool {
	return s != nil && s.UserID != nil
}

// HasAdmin reports whether the admin scope is set.
func (s *Session) HasAdmin() bool {
	return s != nil && s.AdminName != ""
}
