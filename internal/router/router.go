package router

import (
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/config"
	"github.com/AngeloApolinario/philmarresort/internal/handler"
	"github.com/AngeloApolinario/philmarresort/internal/middleware"
	"github.com/AngeloApolinario/philmarresort/internal/session"
	"github.com/AngeloApolinario/philmarresort/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.Static("/images", "./web/static/images")
	r.LoadHTMLGlob("web/templates/*")

	// core components
	users := store.NewUsers(db)
	notifications := store.NewNotifications(db, cfg.App.PageSize)
	bookings := store.NewBookings(db, users, notifications)
	auth := session.NewAuthority(db, time.Duration(cfg.Session.ExpireHours)*time.Hour)

	authHandler := handler.NewAuthHandler(users, auth, cfg.Session)
	bookingHandler := handler.NewBookingHandler(bookings, notifications, auth)
	profileHandler := handler.NewProfileHandler(users, bookings, notifications, auth)
	adminHandler := handler.NewAdminHandler(db, users, bookings, auth, cfg.Admin, cfg.Session)
	exportHandler := handler.NewExportHandler(bookings)

	// every route sees the session (or its absence)
	r.Use(middleware.SessionLoader(auth, cfg.Session))

	// marketing pages
	r.GET("/", handler.Home)
	r.GET("/accommodation", handler.Accommodation)
	r.GET("/gallery", handler.Gallery)
	r.GET("/rules", handler.Rules)
	r.GET("/contact", handler.Contact)

	// authentication
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.GET("/logout", authHandler.Logout)

	// user area: booking, profile, polling
	user := r.Group("")
	user.Use(middleware.RequireUser(auth, users, cfg.Session))
	user.GET("/booking", bookingHandler.ShowForm)
	user.POST("/booking/submit", bookingHandler.Submit)
	user.POST("/booking/cancel/:id", bookingHandler.Cancel)
	user.GET("/userUpdates", bookingHandler.Updates)
	user.GET("/profile", profileHandler.Show)
	user.POST("/profile", profileHandler.Update)

	// admin area
	admin := r.Group("/admin")
	admin.GET("/login", adminHandler.ShowLogin)
	admin.POST("/login", adminHandler.Login)
	admin.GET("/logout", adminHandler.Logout)

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin(), middleware.AdminAudit(db))
	protected.GET("", adminHandler.Index)
	protected.GET("/dashboard", adminHandler.Dashboard)
	protected.GET("/analytics", adminHandler.Analytics)
	protected.GET("/history", adminHandler.History)
	protected.GET("/users", adminHandler.UsersPage)
	protected.GET("/settings", adminHandler.Settings)
	protected.POST("/accept/:id", adminHandler.Accept)
	protected.POST("/decline/:id", adminHandler.Decline)
	protected.POST("/bookings/delete/:id", adminHandler.DeleteBooking)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	r.NoRoute(handler.NotFound)

	return r
}
