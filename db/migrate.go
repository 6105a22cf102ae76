package db

import (
	"fmt"

	"github.com/iskiospa/iskio-api/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every table the API owns.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Category{},
		&models.Service{},
		&models.Slot{},
		&models.Cita{},
		&models.HomeContent{},
		&models.InstagramPost{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Migrations applied successfully")
	return nil
}
