package models

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	now := time.Now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return base.AddDate(0, 0, offset)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
		want     int
	}{
		{"two full days", day(1), day(3), 2},
		{"one day", day(1), day(2), 1},
		{"partial day rounds up", day(1), day(1).Add(6 * time.Hour), 1},
		{"checkout before checkin", day(3), day(1), 0},
		{"same instant", day(1), day(1), 0},
	}

	for _, tc := range cases {
		b := Booking{Checkin: tc.checkin, Checkout: tc.checkout}
		if got := b.Nights(); got != tc.want {
			t.Errorf("%s: Nights() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestValidate_OK(t *testing.T) {
	b := Booking{
		Room:     RoomNativeCottage,
		Checkin:  day(1),
		Checkout: day(3),
		Guests:   2,
	}
	if err := b.Validate(time.Now()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_TodayCheckinAllowed(t *testing.T) {
	b := Booking{
		Room:     RoomTentSite,
		Checkin:  day(0),
		Checkout: day(1),
		Guests:   1,
	}
	if err := b.Validate(time.Now()); err != nil {
		t.Errorf("Validate() with today's check-in error = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		booking Booking
		field   string
	}{
		{
			"unknown room",
			Booking{Room: "penthouse", Checkin: day(1), Checkout: day(2), Guests: 2},
			"room",
		},
		{
			"past checkin",
			Booking{Room: RoomPremium, Checkin: day(-1), Checkout: day(2), Guests: 2},
			"checkin",
		},
		{
			"checkout before checkin",
			Booking{Room: RoomPremium, Checkin: day(3), Checkout: day(1), Guests: 2},
			"checkout",
		},
		{
			"checkout equals checkin",
			Booking{Room: RoomPremium, Checkin: day(2), Checkout: day(2), Guests: 2},
			"checkout",
		},
		{
			"zero guests",
			Booking{Room: RoomPremium, Checkin: day(1), Checkout: day(2), Guests: 0},
			"guests",
		},
		{
			"too many guests",
			Booking{Room: RoomPremium, Checkin: day(1), Checkout: day(2), Guests: 21},
			"guests",
		},
	}

	for _, tc := range cases {
		err := tc.booking.Validate(time.Now())
		if err == nil {
			t.Errorf("%s: Validate() error = nil, want error", tc.name)
			continue
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			t.Errorf("%s: error type = %T, want *ValidationError", tc.name, err)
			continue
		}
		if ve.Field != tc.field {
			t.Errorf("%s: field = %q, want %q", tc.name, ve.Field, tc.field)
		}
	}
}

func TestPrepareForSave_Pricing(t *testing.T) {
	// native-cottage, 2 nights: 1500/night, 3000 total
	b := Booking{
		Room:     RoomNativeCottage,
		Checkin:  day(1),
		Checkout: day(3),
		Guests:   2,
	}
	b.PrepareForSave("Juan Dela Cruz")

	if b.PricePerNight != 1500 {
		t.Errorf("PricePerNight = %d, want 1500", b.PricePerNight)
	}
	if b.TotalPrice != 3000 {
		t.Errorf("TotalPrice = %d, want 3000", b.TotalPrice)
	}
	if b.Status != StatusPending {
		t.Errorf("Status = %q, want %q", b.Status, StatusPending)
	}
	if b.SalesCategory != "accommodation" {
		t.Errorf("SalesCategory = %q, want accommodation", b.SalesCategory)
	}
	if b.Name != "Juan Dela Cruz" {
		t.Errorf("Name = %q, want owner fullname", b.Name)
	}
}

func TestPrepareForSave_KeepsExplicitName(t *testing.T) {
	b := Booking{Room: RoomTentSite, Checkin: day(1), Checkout: day(2), Name: "Walk-in Guest"}
	b.PrepareForSave("Owner Name")
	if b.Name != "Walk-in Guest" {
		t.Errorf("Name = %q, want explicit name preserved", b.Name)
	}
}

func TestPrepareForSave_RecomputesClientValues(t *testing.T) {
	// client-supplied prices must be overwritten on every save
	b := Booking{
		Room:          RoomOpenArea,
		Checkin:       day(1),
		Checkout:      day(4),
		Guests:        5,
		PricePerNight: 1,
		TotalPrice:    1,
	}
	b.PrepareForSave("x")

	if b.PricePerNight != 1000 {
		t.Errorf("PricePerNight = %d, want 1000", b.PricePerNight)
	}
	if b.TotalPrice != 3000 {
		t.Errorf("TotalPrice = %d, want 3000", b.TotalPrice)
	}
}

func TestRoomRates(t *testing.T) {
	want := map[string]int64{
		RoomPremium:       3500,
		RoomNativeCottage: 1500,
		RoomBasicCottage:  1200,
		RoomOpenArea:      1000,
		RoomTentSite:      500,
	}
	for room, rate := range want {
		if RoomRates[room] != rate {
			t.Errorf("RoomRates[%s] = %d, want %d", room, RoomRates[room], rate)
		}
	}
	if len(RoomRates) != len(want) {
		t.Errorf("RoomRates has %d entries, want %d", len(RoomRates), len(want))
	}
}
