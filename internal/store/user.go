package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt work factor for stored passwords.
const bcryptCost = 12

// Users is the credential store: account records with hashed passwords.
type Users struct {
	DB *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{DB: db}
}

// Register creates a new account. Email is normalized to lowercase and must
// be unique (case-insensitive).
func (s *Users) Register(fullname, email, password string) (*models.User, error) {
	fullname = strings.TrimSpace(fullname)
	email = strings.ToLower(strings.TrimSpace(email))

	if fullname == "" || email == "" || password == "" {
		return nil, &models.ValidationError{Field: "signup", Message: "fullname, email and password are required"}
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("LOWER(email) = ?", email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Fullname:     fullname,
		Email:        email,
		PasswordHash: string(hash),
		ProfileImage: "/images/default-avatar.png",
		Role:         "user",
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Verify looks an account up by email or username and checks the password.
// bcrypt's comparison is constant time.
func (s *Users) Verify(identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrNotFound
	}

	var user models.User
	err := s.DB.
		Where("LOWER(email) = LOWER(?) OR username = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}
	return &user, nil
}

// Get returns a user by id.
func (s *Users) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// ListAll returns every account, newest first.
func (s *Users) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ProfileUpdate carries optional profile fields; empty values are skipped.
type ProfileUpdate struct {
	Fullname     string
	Phone        string
	ProfileImage string
}

// UpdateProfile applies only the provided fields. The password hash is never
// touched here.
func (s *Users) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if v := strings.TrimSpace(upd.Fullname); v != "" {
		changes["fullname"] = v
	}
	if v := strings.TrimSpace(upd.Phone); v != "" {
		changes["phone"] = v
	}
	if v := strings.TrimSpace(upd.ProfileImage); v != "" {
		changes["profile_image"] = v
	}
	if len(changes) == 0 {
		return user, nil
	}

	if err := s.DB.Model(user).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}
