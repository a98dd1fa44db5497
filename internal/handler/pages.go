package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static marketing pages. No session requirement; the base data still shows
// login state in the navigation.

func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", baseData(c, "Philmar Resort | Home"))
}

func Accommodation(c *gin.Context) {
	c.HTML(http.StatusOK, "accommodation.html", baseData(c, "Accommodation | Philmar Resort"))
}

func Gallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery.html", baseData(c, "Gallery | Philmar Resort"))
}

func Rules(c *gin.Context) {
	c.HTML(http.StatusOK, "rules.html", baseData(c, "Resort Rules | Philmar Resort"))
}

func Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", baseData(c, "Contact Us | Philmar Resort"))
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", baseData(c, "Page Not Found | Philmar Resort"))
}
