package handler

import (
	"net/http"

	"github.com/AngeloApolinario/philmarresort/internal/middleware"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/store"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile page and profile updates.
type ProfileHandler struct {
	Users         *store.Users
	Bookings      *store.Bookings
	Notifications *store.Notifications
	Auth          *session.Authority
}

func NewProfileHandler(users *store.Users, bookings *store.Bookings, notifications *store.Notifications, auth *session.Authority) *ProfileHandler {
	return &ProfileHandler{Users: users, Bookings: bookings, Notifications: notifications, Auth: auth}
}

// Show renders the profile page with the user's bookings and notifications.
// A pending flash message is consumed here; otherwise a greeting is shown.
func (h *ProfileHandler) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.Bookings.ListForUser(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Error | Philmar Resort",
			"message": "Error loading profile page.",
		})
		return
	}
	notifications, err := h.Notifications.ListForUser(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Error | Philmar Resort",
			"message": "Error loading profile page.",
		})
		return
	}

	greeting := "Welcome back, " + user.Fullname + "!"
	if _, msg := h.Auth.TakeFlash(middleware.Current(c)); msg != "" {
		greeting = msg
	}

	data := baseData(c, "My Profile | Philmar Resort")
	data["profile"] = user
	data["bookings"] = bookings
	data["notifications"] = notifications
	data["greeting"] = greeting
	c.HTML(http.StatusOK, "profile.html", data)
}

// Update applies the submitted profile fields (fullname, phone, profile
// image); blank fields are left untouched, the password never changes here.
func (h *ProfileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	updated, err := h.Users.UpdateProfile(user.ID, store.ProfileUpdate{
		Fullname:     c.PostForm("fullname"),
		Phone:        c.PostForm("phone"),
		ProfileImage: c.PostForm("profileImage"),
	})
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Error | Philmar Resort",
			"message": "Failed to update profile.",
		})
		return
	}

	// session keeps a projection of the user; refresh it
	if s := middleware.Current(c); s.HasUser() {
		if _, err := h.Auth.StartUser(s.Token, updated); err == nil {
			_ = h.Auth.SetFlash(s, "success", "Profile updated successfully!")
		}
	}
	c.Redirect(http.StatusFound, "/profile")
}
