package controllers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/db"
	"github.com/iskiospa/iskio-api/middleware"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/utils"
	"golang.org/x/crypto/bcrypt"
)

func GetAccount(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Usuario no encontrado", nil)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateAccount changes the email and/or password after checking the current password.
// A wrong current password answers 400, never 401, so clients keep their session.
func UpdateAccount(c *fiber.Ctx) error {
	type AccountInput struct {
		Email           *string `json:"email"`
		CurrentPassword string  `json:"current_password"`
		NewPassword     *string `json:"new_password"`
	}
	input := new(AccountInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if strings.TrimSpace(input.CurrentPassword) == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Debes ingresar tu contraseña actual", nil)
	}

	var user models.User
	if err := db.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Usuario no encontrado", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "La contraseña actual es incorrecta", nil)
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			user.Email = nil
		} else {
			if _, err := mail.ParseAddress(email); err != nil {
				return utils.Fail(c, fiber.StatusBadRequest, "Correo inválido", nil)
			}
			var taken int64
			if err := db.DB.Model(&models.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&taken).Error; err != nil {
				return respond(c, err, "Failed to check email")
			}
			if taken > 0 {
				return utils.Fail(c, fiber.StatusConflict, "El correo ya está en uso", nil)
			}
			user.Email = &email
		}
	}

	if input.NewPassword != nil && strings.TrimSpace(*input.NewPassword) != "" {
		newPassword := *input.NewPassword
		if len(newPassword) < minPasswordLength {
			return utils.Fail(c, fiber.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres", nil)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return respond(c, err, "Failed to hash password")
		}
		user.PasswordHash = string(hashed)
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return respond(c, err, "Failed to update account")
	}

	return c.JSON(fiber.Map{
		"message": "Cuenta actualizada",
		"user":    user,
	})
}
