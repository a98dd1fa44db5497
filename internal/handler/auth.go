package handler

import (
	"errors"
	"net/http"

	"github.com/AngeloApolinario/philmarresort/internal/config"
	"github.com/AngeloApolinario/philmarresort/internal/middleware"
	"github.com/AngeloApolinario/philmarresort/internal/models"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves user signup, login and logout.
type AuthHandler struct {
	Users   *store.Users
	Auth    *session.Authority
	Session config.SessionConfig
}

func NewAuthHandler(users *store.Users, auth *session.Authority, sc config.SessionConfig) *AuthHandler {
	return &AuthHandler{Users: users, Auth: auth, Session: sc}
}

// ShowLogin renders the login page; already-authenticated users go home.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.Current(c).HasUser() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	data := baseData(c, "Login / Signup | Philmar Resort")
	data["error"] = nil
	data["success"] = nil
	c.HTML(http.StatusOK, "login.html", data)
}

// ShowSignup renders the signup page; already-authenticated users go home.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	if middleware.Current(c).HasUser() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	data := baseData(c, "Sign Up | Philmar Resort")
	data["error"] = nil
	data["success"] = nil
	c.HTML(http.StatusOK, "signup.html", data)
}

// Signup registers a new account and sends the user to the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	fullname := c.PostForm("fullname")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := h.Users.Register(fullname, email, password)
	if err != nil {
		msg := "Something went wrong. Please try again later."
		var ve *models.ValidationError
		if errors.Is(err, store.ErrDuplicateEmail) {
			msg = "Email already registered. Please login instead."
		} else if errors.As(err, &ve) {
			msg = "Please fill out all fields before submitting."
		}
		data := baseData(c, "Sign Up | Philmar Resort")
		data["error"] = msg
		data["success"] = nil
		c.HTML(http.StatusOK, "signup.html", data)
		return
	}

	data := baseData(c, "Login / Signup | Philmar Resort")
	data["error"] = nil
	data["success"] = "Account created successfully! You can now login."
	c.HTML(http.StatusOK, "login.html", data)
}

// Login verifies credentials and starts the user scope. Lookup and password
// failures render the same message so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	identifier := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.Users.Verify(identifier, password)
	if err != nil {
		msg := "Something went wrong. Please try again."
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrBadPassword) {
			msg = "Invalid username or password."
		}
		data := baseData(c, "Login / Signup | Philmar Resort")
		data["error"] = msg
		data["success"] = nil
		c.HTML(http.StatusOK, "login.html", data)
		return
	}

	token := ""
	if s := middleware.Current(c); s != nil {
		token = s.Token
	}
	s, err := h.Auth.StartUser(token, user)
	if err != nil {
		data := baseData(c, "Login / Signup | Philmar Resort")
		data["error"] = "Something went wrong. Please try again."
		data["success"] = nil
		c.HTML(http.StatusOK, "login.html", data)
		return
	}

	middleware.SetSessionCookie(c, h.Session, s.Token)
	c.Redirect(http.StatusFound, "/profile")
}

// Logout destroys the whole session, both scopes included.
func (h *AuthHandler) Logout(c *gin.Context) {
	if s := middleware.Current(c); s != nil {
		_ = h.Auth.End(s.Token)
	}
	middleware.ClearSessionCookie(c, h.Session)
	c.Redirect(http.StatusFound, "/")
}
