// Package session implements the session authority: server-side session
// state keyed by an opaque token, carrying two independent identity scopes
// (user and admin). The cookie plumbing lives in the middleware; everything
// here works on plain token strings so it stays testable.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Authority issues, extends and destroys sessions.
type Authority struct {
	DB  *gorm.DB
	TTL time.Duration // inactivity window; the cookie max-age matches
}

func NewAuthority(db *gorm.DB, ttl time.Duration) *Authority {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authority{DB: db, TTL: ttl}
}

// Lookup returns the live session for a token, extending its expiry
// (sliding inactivity window). Expired sessions are removed and reported as
// missing. A nil session with nil error means "no session".
func (a *Authority) Lookup(token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	var s models.Session
	if err := a.DB.First(&s, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	now := time.Now()
	if now.After(s.ExpiresAt) {
		_ = a.DB.Delete(&models.Session{}, "token = ?", token).Error
		return nil, nil
	}

	s.ExpiresAt = now.Add(a.TTL)
	if err := a.DB.Save(&s).Error; err != nil {
		return nil, fmt.Errorf("touch session: %w", err)
	}
	return &s, nil
}

// StartUser sets the user scope on the session for token, minting a new
// session when token is empty or stale. The admin scope, if present on the
// same session, is left alone.
func (a *Authority) StartUser(token string, u *models.User) (*models.Session, error) {
	s, err := a.ensure(token)
	if err != nil {
		return nil, err
	}

	id := u.ID
	s.UserID = &id
	s.UserFullname = u.Fullname
	s.UserEmail = u.Email
	s.UserUsername = u.Username

	if err := a.DB.Save(s).Error; err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// StartAdmin sets the admin scope on the session for token, minting a new
// session when needed. The user scope is left alone.
func (a *Authority) StartAdmin(token, adminName string) (*models.Session, error) {
	s, err := a.ensure(token)
	if err != nil {
		return nil, err
	}

	s.AdminName = adminName

	if err := a.DB.Save(s).Error; err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// End destroys the whole session record. Logout is global: both scopes go.
func (a *Authority) End(token string) error {
	if token == "" {
		return nil
	}
	if err := a.DB.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SetFlash stores a one-shot message on the session.
func (a *Authority) SetFlash(s *models.Session, kind, message string) error {
	s.Flash = message
	s.FlashKind = kind
	if err := a.DB.Save(s).Error; err != nil {
		return fmt.Errorf("save flash: %w", err)
	}
	return nil
}

// TakeFlash returns and clears the pending flash message, if any.
func (a *Authority) TakeFlash(s *models.Session) (kind, message string) {
	if s == nil || s.Flash == "" {
		return "", ""
	}
	kind, message = s.FlashKind, s.Flash
	s.Flash = ""
	s.FlashKind = ""
	_ = a.DB.Save(s).Error
	return kind, message
}

// PurgeExpired removes sessions past their expiry. Called opportunistically
// at startup.
func (a *Authority) PurgeExpired() error {
	err := a.DB.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
	if err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	return nil
}

func (a *Authority) ensure(token string) (*models.Session, error) {
	if token != "" {
		s, err := a.Lookup(token)
		if err != nil {
			return nil, err
		}
		if s != nil {
			return s, nil
		}
	}

	s := models.Session{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(a.TTL),
	}
	if err := a.DB.Create(&s).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &s, nil
}
