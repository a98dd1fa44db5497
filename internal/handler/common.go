package handler

import (
	"github.com/AngeloApolinario/philmarresort/internal/middleware"

	"github.com/gin-gonic/gin"
)

// baseData builds the view context shared by every rendered page: the page
// title plus the identity scopes of the current session. Dashboard numbers
// are added explicitly by the admin pages, never via ambient state.
func baseData(c *gin.Context, title string) gin.H {
	s := middleware.Current(c)

	data := gin.H{
		"title":    title,
		"loggedIn": s.HasUser(),
		"isAdmin":  s.HasAdmin(),
	}
	if s.HasUser() {
		data["user"] = gin.H{
			"id":       *s.UserID,
			"fullname": s.UserFullname,
			"email":    s.UserEmail,
			"username": s.UserUsername,
		}
	}
	if s.HasAdmin() {
		data["admin"] = gin.H{"username": s.AdminName}
	}
	return data
}
