package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iskiospa/iskio-api/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account when it does not exist yet.
func SeedAdmin(conn *gorm.DB, username, password, email string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	err := conn.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Rol:          models.RoleAdmin,
	}
	if email = strings.TrimSpace(email); email != "" {
		admin.Email = &email
	}
	if err := conn.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logrus.WithField("username", username).Info("Seeded admin account")
	return nil
}
