package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the success envelope used by the polling endpoints:
// {"success": true, ...fields}.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes the failure envelope: {"success": false, "error": msg}.
func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   msg,
	})
}
