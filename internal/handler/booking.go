package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/middleware"
	"github.com/AngeloApolinario/philmarresort/internal/models"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/store"
	"github.com/AngeloApolinario/philmarresort/internal/util"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking form, the cancel endpoint and the
// polling endpoint for profile updates.
type BookingHandler struct {
	Bookings      *store.Bookings
	Notifications *store.Notifications
	Auth          *session.Authority
}

func NewBookingHandler(bookings *store.Bookings, notifications *store.Notifications, auth *session.Authority) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Notifications: notifications, Auth: auth}
}

// ---------- JSON projections for the polling contract ----------

type bookingResp struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Room            string    `json:"room"`
	Checkin         time.Time `json:"checkin"`
	Checkout        time.Time `json:"checkout"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	PricePerNight   int64     `json:"pricePerNight"`
	TotalPrice      int64     `json:"totalPrice"`
	Contact         string    `json:"contact,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type notificationResp struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func toBookingResp(b *models.Booking) bookingResp {
	return bookingResp{
		ID:              b.ID,
		Name:            b.Name,
		Room:            b.Room,
		Checkin:         b.Checkin,
		Checkout:        b.Checkout,
		Nights:          b.Nights(),
		Guests:          b.Guests,
		PricePerNight:   b.PricePerNight,
		TotalPrice:      b.TotalPrice,
		Contact:         b.Contact,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func toNotificationResp(n *models.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ---------- booking form ----------

// ShowForm renders the booking page for a logged-in user.
func (h *BookingHandler) ShowForm(c *gin.Context) {
	data := baseData(c, "Book Your Stay | Philmar Resort")
	data["error"] = nil
	data["success"] = nil
	c.HTML(http.StatusOK, "booking.html", data)
}

func (h *BookingHandler) renderFormError(c *gin.Context, msg string) {
	data := baseData(c, "Book Your Stay | Philmar Resort")
	data["error"] = msg
	data["success"] = nil
	c.HTML(http.StatusOK, "booking.html", data)
}

// Submit handles the booking form post: parse, submit to the ledger, flash a
// confirmation and send the user to the profile page.
func (h *BookingHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	room := c.PostForm("room")
	checkinStr := c.PostForm("checkin")
	checkoutStr := c.PostForm("checkout")
	guestsStr := c.PostForm("guests")

	if room == "" || checkinStr == "" || checkoutStr == "" || guestsStr == "" {
		h.renderFormError(c, "Please fill out all fields before submitting.")
		return
	}

	checkin, err := util.ParseDate(checkinStr)
	if err != nil {
		h.renderFormError(c, "Invalid check-in date.")
		return
	}
	checkout, err := util.ParseDate(checkoutStr)
	if err != nil {
		h.renderFormError(c, "Invalid check-out date.")
		return
	}
	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		h.renderFormError(c, "Invalid number of guests.")
		return
	}

	_, err = h.Bookings.Submit(user.ID, store.BookingInput{
		Room:            room,
		Checkin:         checkin,
		Checkout:        checkout,
		Guests:          guests,
		Contact:         c.PostForm("contact"),
		SpecialRequests: c.PostForm("specialRequests"),
	})
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			h.renderFormError(c, ve.Message)
			return
		}
		h.renderFormError(c, "Something went wrong. Please try again later.")
		return
	}

	if s := middleware.Current(c); s != nil {
		_ = h.Auth.SetFlash(s, "success", "Your booking has been successfully submitted!")
	}
	c.Redirect(http.StatusFound, "/profile")
}

// Cancel deletes the caller's own booking. JSON envelope per the polling
// contract.
func (h *BookingHandler) Cancel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Fail(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.Bookings.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Fail(c, http.StatusNotFound, "Booking not found")
			return
		}
		util.Fail(c, http.StatusInternalServerError, "Failed to cancel booking.")
		return
	}
	// ownership check; admins use their own delete route
	if booking.UserID != user.ID {
		util.Fail(c, http.StatusNotFound, "Booking not found")
		return
	}

	if err := h.Bookings.Cancel(booking.ID); err != nil {
		util.Fail(c, http.StatusInternalServerError, "Failed to cancel booking.")
		return
	}

	util.OK(c, gin.H{"message": "Booking cancelled successfully."})
}

// Updates is the polling endpoint: the caller's bookings and notifications,
// newest first.
func (h *BookingHandler) Updates(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.Bookings.ListForUser(user.ID)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	notifications, err := h.Notifications.ListForUser(user.ID)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to load notifications")
		return
	}

	bs := make([]bookingResp, 0, len(bookings))
	for i := range bookings {
		bs = append(bs, toBookingResp(&bookings[i]))
	}
	ns := make([]notificationResp, 0, len(notifications))
	for i := range notifications {
		ns = append(ns, toNotificationResp(&notifications[i]))
	}

	util.OK(c, gin.H{
		"bookings":      bs,
		"notifications": ns,
	})
}
