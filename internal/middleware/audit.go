package middleware

import (
	"github.com/AngeloApolinario/philmarresort/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminAudit records administrative actions after the handler runs. Only
// requests with an admin scope are logged.
func AdminAudit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		s := Current(c)
		if !s.HasAdmin() {
			return
		}
		// page loads are noise; keep mutations only
		if c.Request.Method == "GET" {
			return
		}

		entry := models.AuditLog{
			AdminName: s.AdminName,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Action:    c.Request.Method + " " + c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
