package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/iskiospa/iskio-api/models"
)

// GenerateToken signs an access token for the user.
func GenerateToken(user models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"rol":      user.Rol,
		"exp":      Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
