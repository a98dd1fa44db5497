package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"gorm.io/gorm"
)

// Bookings is the booking ledger: reservation records and their lifecycle.
// Each status transition posts exactly one notification to the booking's
// owner. The booking write and the notification insert are two separate
// writes; a lost notification is accepted as best effort.
type Bookings struct {
	DB     *gorm.DB
	Users  *Users
	Outbox *Notifications
}

func NewBookings(db *gorm.DB, users *Users, outbox *Notifications) *Bookings {
	return &Bookings{DB: db, Users: users, Outbox: outbox}
}

// BookingInput is a user's booking submission.
type BookingInput struct {
	Room            string
	Checkin         time.Time
	Checkout        time.Time
	Guests          int
	Contact         string
	SpecialRequests string
	Name            string // optional display name; owner's fullname when blank
}

// Submit validates the input, applies defaults and derived pricing, persists
// the booking as pending and notifies the owner.
func (s *Bookings) Submit(userID uint, in BookingInput) (*models.Booking, error) {
	owner, err := s.Users.Get(userID)
	if err != nil {
		return nil, err
	}

	b := models.Booking{
		UserID:          userID,
		Name:            in.Name,
		Room:            in.Room,
		Checkin:         in.Checkin,
		Checkout:        in.Checkout,
		Guests:          in.Guests,
		Contact:         in.Contact,
		SpecialRequests: in.SpecialRequests,
	}
	if err := b.Validate(time.Now()); err != nil {
		return nil, err
	}
	b.PrepareForSave(owner.Fullname)

	if err := s.DB.Create(&b).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	msg := fmt.Sprintf("Your booking request for %s has been submitted and is pending approval.", b.Room)
	if _, err := s.Outbox.Post(userID, msg, "booking"); err != nil {
		return &b, fmt.Errorf("notify submit: %w", err)
	}
	return &b, nil
}

// Get returns a booking by id.
func (s *Bookings) Get(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

// Accept marks a booking accepted and notifies its owner. A missing booking
// fails with ErrNotFound and posts nothing.
func (s *Bookings) Accept(id uint) (*models.Booking, error) {
	return s.transition(id, models.StatusAccepted, "Your booking for %s has been accepted!")
}

// Decline marks a booking declined and notifies its owner.
func (s *Bookings) Decline(id uint) (*models.Booking, error) {
	return s.transition(id, models.StatusDeclined, "Your booking for %s has been declined.")
}

func (s *Bookings) transition(id uint, status, msgFormat string) (*models.Booking, error) {
	b, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	b.Status = status
	// recompute derived fields on every save, not only on creation
	b.PrepareForSave(b.Name)
	if err := s.DB.Save(b).Error; err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	if _, err := s.Outbox.Post(b.UserID, fmt.Sprintf(msgFormat, b.Room), "booking"); err != nil {
		return b, fmt.Errorf("notify transition: %w", err)
	}
	return b, nil
}

// Cancel deletes a booking and notifies its owner. Scope enforcement (owner
// or admin) is the caller's responsibility.
func (s *Bookings) Cancel(id uint) error {
	b, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&models.Booking{}, id).Error; err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	msg := fmt.Sprintf("Your booking for %s has been cancelled.", b.Room)
	if _, err := s.Outbox.Post(b.UserID, msg, "booking"); err != nil {
		return fmt.Errorf("notify cancel: %w", err)
	}
	return nil
}

// ListForUser returns the user's bookings, newest first.
func (s *Bookings) ListForUser(userID uint) ([]models.Booking, error) {
	var bs []models.Booking
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bs).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bs, nil
}

// ListAll returns every booking, newest first. Admin only; the route guard
// enforces that.
func (s *Bookings) ListAll() ([]models.Booking, error) {
	var bs []models.Booking
	if err := s.DB.Order("created_at DESC, id DESC").Find(&bs).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bs, nil
}
