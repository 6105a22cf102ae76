package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/middleware"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	resetTokenTTL     = time.Hour
	minPasswordLength = 6
)

// Login handles user authentication
func Login(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginInput struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		username := strings.TrimSpace(input.Username)
		if username == "" || input.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Usuario y contraseña son obligatorios",
			})
		}

		var user models.User
		if db.DB.Where("username = ? OR email = ?", username, username).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Credenciales inválidas",
			})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Credenciales inválidas",
			})
		}

		token, err := utils.GenerateToken(user, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
		if err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "Failed to generate token", err)
		}

		logrus.WithField("username", user.Username).Info("User logged in")
		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user":    user,
		})
	}
}

// Me returns the user behind the bearer token.
func Me(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(fiber.Map{"user": user})
}

// Logout doesn't actually invalidate the token as JWTs are stateless
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ForgotPassword always answers the same message so emails cannot be enumerated.
func ForgotPassword(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ForgotInput struct {
			Email string `json:"email"`
		}
		input := new(ForgotInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}
		email := strings.TrimSpace(input.Email)
		if email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "El correo es obligatorio",
			})
		}

		response := fiber.Map{
			"message": "Si el correo está registrado, recibirás instrucciones para restablecer tu contraseña.",
		}

		var user models.User
		if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
			return c.JSON(response)
		}

		reset := models.PasswordReset{
			UserID:    user.ID,
			Token:     utils.GenerateResetToken(),
			ExpiresAt: utils.Now().Add(resetTokenTTL),
		}
		if err := db.DB.Create(&reset).Error; err != nil {
			return respond(c, err, "Failed to create reset token")
		}

		link := fmt.Sprintf("%s/reset-password?token=%s", cfg.FrontendURL, reset.Token)
		body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Recibimos una solicitud para restablecer tu contraseña de ISKIO Spa.</p>
		<p><a href="%s">Restablecer contraseña</a></p>
		<p>El enlace vence en una hora. Si no solicitaste el cambio, ignora este correo.</p>
	`, user.Username, link)
		utils.SendEmailAsync(email, "Restablecer contraseña", body)

		return c.JSON(response)
	}
}

// ResetPassword consumes a reset token and stores the new password.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	input := new(ResetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	password := input.Password
	if strings.TrimSpace(password) == "" || len(password) < minPasswordLength {
		return utils.Fail(c, fiber.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres", nil)
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordReset
		if err := tx.Where("token = ?", strings.TrimSpace(input.Token)).First(&reset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return badRequest("El enlace no es válido o ya expiró")
			}
			return err
		}
		if !reset.Valid(utils.Now()) {
			return badRequest("El enlace no es válido o ya expiró")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password_hash", string(hashed)).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used", true).Error
	})
	if err != nil {
		return respond(c, err, "Failed to reset password")
	}

	return c.JSON(fiber.Map{
		"message": "Contraseña actualizada correctamente",
	})
}
