package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/AngeloApolinario/philmarresort/internal/config"
	"github.com/AngeloApolinario/philmarresort/internal/database"
	"github.com/AngeloApolinario/philmarresort/internal/router"
	"github.com/AngeloApolinario/philmarresort/internal/session"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Admin.Username == "" || cfg.Admin.PasswordHash == "" {
		log.Fatal("admin credentials missing: set admin.username and admin.password_hash (bcrypt)")
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// drop sessions left over from before the last restart
	auth := session.NewAuthority(db, time.Duration(cfg.Session.ExpireHours)*time.Hour)
	if err := auth.PurgeExpired(); err != nil {
		log.Printf("purge sessions: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
