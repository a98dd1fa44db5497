package handler

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AngeloApolinario/philmarresort/internal/config"
	"github.com/AngeloApolinario/philmarresort/internal/middleware"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/stats"
	"github.com/AngeloApolinario/philmarresort/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminHandler serves the operator login and the administrative pages.
type AdminHandler struct {
	DB       *gorm.DB
	Users    *store.Users
	Bookings *store.Bookings
	Auth     *session.Authority
	Gate     config.AdminConfig
	Session  config.SessionConfig
}

func NewAdminHandler(db *gorm.DB, users *store.Users, bookings *store.Bookings, auth *session.Authority, gate config.AdminConfig, sc config.SessionConfig) *AdminHandler {
	return &AdminHandler{DB: db, Users: users, Bookings: bookings, Auth: auth, Gate: gate, Session: sc}
}

// checkGate verifies the single operator credential. The password lives in
// config as a bcrypt hash only; both comparisons are constant time.
func (h *AdminHandler) checkGate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.Gate.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(h.Gate.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}

// ---------- login / logout ----------

func (h *AdminHandler) ShowLogin(c *gin.Context) {
	if middleware.Current(c).HasAdmin() {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	data := baseData(c, "Admin Login | Philmar Resort")
	data["error"] = nil
	c.HTML(http.StatusOK, "adminlog.html", data)
}

func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.checkGate(username, password) {
		data := baseData(c, "Admin Login | Philmar Resort")
		data["error"] = "Invalid username or password"
		c.HTML(http.StatusOK, "adminlog.html", data)
		return
	}

	token := ""
	if s := middleware.Current(c); s != nil {
		token = s.Token
	}
	s, err := h.Auth.StartAdmin(token, username)
	if err != nil {
		data := baseData(c, "Admin Login | Philmar Resort")
		data["error"] = "Something went wrong. Please try again."
		c.HTML(http.StatusOK, "adminlog.html", data)
		return
	}
	_ = h.Auth.SetFlash(s, "success", "Welcome back, Admin!")

	middleware.SetSessionCookie(c, h.Session, s.Token)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout destroys the whole session; the user scope, if any, goes with it.
func (h *AdminHandler) Logout(c *gin.Context) {
	if s := middleware.Current(c); s != nil {
		_ = h.Auth.End(s.Token)
	}
	middleware.ClearSessionCookie(c, h.Session)
	c.Redirect(http.StatusFound, "/admin/login")
}

// Index redirects /admin to the dashboard.
func (h *AdminHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// ---------- pages ----------

func (h *AdminHandler) renderError(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Error | Philmar Resort",
		"message": msg,
	})
}

// Dashboard shows the aggregate counters and the full booking list.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	overview, err := stats.Load(h.DB)
	if err != nil {
		h.renderError(c, "Failed to load dashboard.")
		return
	}
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		h.renderError(c, "Failed to load dashboard.")
		return
	}

	data := baseData(c, "Dashboard | Philmar Resort")
	data["overview"] = overview
	data["bookings"] = bookings
	kind, msg := h.Auth.TakeFlash(middleware.Current(c))
	if msg != "" {
		data["message"] = gin.H{"type": kind, "text": msg}
	}
	c.HTML(http.StatusOK, "admin.html", data)
}

// Analytics shows the revenue/guest totals.
func (h *AdminHandler) Analytics(c *gin.Context) {
	overview, err := stats.Load(h.DB)
	if err != nil {
		h.renderError(c, "Failed to load analytics.")
		return
	}

	data := baseData(c, "Analytics | Philmar Resort")
	data["overview"] = overview
	c.HTML(http.StatusOK, "analytics.html", data)
}

// History lists every booking, newest first.
func (h *AdminHandler) History(c *gin.Context) {
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		h.renderError(c, "Failed to load booking history.")
		return
	}

	data := baseData(c, "Booking History | Philmar Resort")
	data["bookings"] = bookings
	c.HTML(http.StatusOK, "history.html", data)
}

// Users lists every registered account, newest first.
func (h *AdminHandler) UsersPage(c *gin.Context) {
	users, err := h.Users.ListAll()
	if err != nil {
		h.renderError(c, "Failed to load users.")
		return
	}

	data := baseData(c, "Users | Philmar Resort")
	data["users"] = users
	c.HTML(http.StatusOK, "users.html", data)
}

func (h *AdminHandler) Settings(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", baseData(c, "Settings | Philmar Resort"))
}

// ---------- booking transitions ----------

func (h *AdminHandler) flashAndBack(c *gin.Context, kind, msg string) {
	if s := middleware.Current(c); s != nil {
		_ = h.Auth.SetFlash(s, kind, msg)
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *AdminHandler) bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.flashAndBack(c, "error", "Booking not found.")
		return 0, false
	}
	return uint(id), true
}

// Accept transitions a pending booking to accepted.
func (h *AdminHandler) Accept(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if _, err := h.Bookings.Accept(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.flashAndBack(c, "error", "Booking not found.")
			return
		}
		h.flashAndBack(c, "error", "Error accepting booking.")
		return
	}
	h.flashAndBack(c, "success", "Booking accepted successfully!")
}

// Decline transitions a pending booking to declined.
func (h *AdminHandler) Decline(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if _, err := h.Bookings.Decline(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.flashAndBack(c, "error", "Booking not found.")
			return
		}
		h.flashAndBack(c, "error", "Error declining booking.")
		return
	}
	h.flashAndBack(c, "success", "Booking declined successfully!")
}

// DeleteBooking removes a booking on behalf of the operator.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.Bookings.Cancel(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.flashAndBack(c, "error", "Booking not found.")
			return
		}
		h.flashAndBack(c, "error", fmt.Sprintf("Error deleting booking %d.", id))
		return
	}
	h.flashAndBack(c, "success", "Booking deleted successfully!")
}
