// Package stats computes read-only projections over the booking ledger for
// administrative reporting. Everything is recomputed per call; nothing here
// mutates the ledger.
package stats

import (
	"fmt"

	"github.com/AngeloApolinario/philmarresort/internal/models"

	"gorm.io/gorm"
)

// Counts holds per-status booking counts.
type Counts struct {
	Total    int64
	Accepted int64
	Declined int64
	Pending  int64
}

// Overview is the explicit view context handed to rendered admin pages.
type Overview struct {
	Counts
	TotalGuests  int64
	TotalRevenue int64
}

// BookingCounts returns the total and per-status booking counts.
func BookingCounts(db *gorm.DB) (Counts, error) {
	var c Counts
	if err := db.Model(&models.Booking{}).Count(&c.Total).Error; err != nil {
		return c, fmt.Errorf("count bookings: %w", err)
	}
	for status, dst := range map[string]*int64{
		models.StatusAccepted: &c.Accepted,
		models.StatusDeclined: &c.Declined,
		models.StatusPending:  &c.Pending,
	} {
		if err := db.Model(&models.Booking{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return c, fmt.Errorf("count %s bookings: %w", status, err)
		}
	}
	return c, nil
}

// TotalGuests sums the guest count across all bookings.
func TotalGuests(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Booking{}).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum guests: %w", err)
	}
	return total, nil
}

// TotalRevenue sums the total price across accepted bookings only.
func TotalRevenue(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Booking{}).
		Where("status = ?", models.StatusAccepted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}

// Load computes the full overview in one pass of queries.
func Load(db *gorm.DB) (Overview, error) {
	var o Overview
	var err error
	if o.Counts, err = BookingCounts(db); err != nil {
		return o, err
	}
	if o.TotalGuests, err = TotalGuests(db); err != nil {
		return o, err
	}
	if o.TotalRevenue, err = TotalRevenue(db); err != nil {
		return o, err
	}
	return o, nil
}
