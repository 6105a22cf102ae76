package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iskiospa/iskio-api/cache"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/cron"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/routes"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if err := utils.SetTimezone(cfg.Timezone); err != nil {
		logrus.WithError(err).Warnf("Unknown timezone %s, using UTC", cfg.Timezone)
	}

	if err := db.Init(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("Database error: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(db.GetDB()); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		logrus.Info("Migrations applied")
		return
	}

	if cfg.SeedAdminEnabled() {
		if err := db.SeedAdmin(db.GetDB(), cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
			logrus.WithError(err).Error("Failed to seed admin user")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cache.InitRedis(ctx, cfg.RedisAddr); err != nil {
		logrus.WithError(err).Warn("Continuing without availability cache")
	}
	cancel()

	utils.SetupMailer(cfg)
	if err := utils.InitCloudinary(cfg); err != nil {
		logrus.WithError(err).Warn("Image uploads disabled")
	}

	scheduler, err := cron.StartCronJobs(db.GetDB(), cfg.ReminderCron)
	if err != nil {
		logrus.Fatalf("Cron setup failed: %v", err)
	}
	defer scheduler.Stop()

	app := routes.NewApp(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.WithError(err).Error("Server shutdown failed")
		}
	}()

	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Server error: %v", err)
	}
}
