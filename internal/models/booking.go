package models

import (
	"fmt"
	"time"
)

// Room types offered by the resort.
const (
	RoomPremium       = "premium-room"
	RoomNativeCottage = "native-cottage"
	RoomBasicCottage  = "basic-cottage"
	RoomOpenArea      = "open-area"
	RoomTentSite      = "tent-site"
)

// RoomRates maps room type to price per night.
var RoomRates = map[string]int64{
	RoomPremium:       3500,
	RoomNativeCottage: 1500,
	RoomBasicCottage:  1200,
	RoomOpenArea:      1000,
	RoomTentSite:      500,
}

// Booking statuses. pending -> accepted and pending -> declined are terminal;
// any booking can be deleted by cancel.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Booking represents a reservation request.
type Booking struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"index;not null"`
	Name            string    `gorm:"size:64"` // auto-filled from the owner when blank
	Room            string    `gorm:"size:32;not null"`
	PricePerNight   int64     `gorm:"not null;default:0"`
	TotalPrice      int64     `gorm:"not null;default:0"`
	SalesCategory   string    `gorm:"size:32;default:accommodation"`
	Checkin         time.Time `gorm:"not null"`
	Checkout        time.Time `gorm:"not null"`
	Guests          int       `gorm:"not null"`
	Contact         string    `gorm:"size:32"`
	SpecialRequests string    `gorm:"size:255"`
	Status          string    `gorm:"size:16;index;default:pending"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidationError reports a rejected booking field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Nights returns the number of nights covered by the booking,
// rounded up to whole days. Computed, never stored.
func (b *Booking) Nights() int {
	if !b.Checkout.After(b.Checkin) {
		return 0
	}
	d := b.Checkout.Sub(b.Checkin)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// Validate checks the submission invariants: known room type, check-in not in
// the past (calendar day), check-out strictly after check-in, guests 1-20.
// Only called at submission time; status transitions on old bookings must not
// re-run the check-in date rule.
func (b *Booking) Validate(now time.Time) error {
	if _, ok := RoomRates[b.Room]; !ok {
		return &ValidationError{Field: "room", Message: "unknown room type"}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	checkin := time.Date(b.Checkin.Year(), b.Checkin.Month(), b.Checkin.Day(), 0, 0, 0, 0, b.Checkin.Location())
	if checkin.Before(today) {
		return &ValidationError{Field: "checkin", Message: "check-in date cannot be in the past"}
	}
	if !b.Checkout.After(b.Checkin) {
		return &ValidationError{Field: "checkout", Message: "check-out date must be after check-in date"}
	}
	if b.Guests < 1 || b.Guests > 20 {
		return &ValidationError{Field: "guests", Message: "guests must be between 1 and 20"}
	}
	return nil
}

// PrepareForSave applies defaults and recomputes the derived price fields.
// Runs before every persist, so prices always follow the rate table and are
// never client-supplied.
func (b *Booking) PrepareForSave(ownerName string) {
	if b.Name == "" {
		b.Name = ownerName
	}
	if b.SalesCategory == "" {
		b.SalesCategory = "accommodation"
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	b.PricePerNight = RoomRates[b.Room]
	b.TotalPrice = b.PricePerNight * int64(b.Nights())
}
