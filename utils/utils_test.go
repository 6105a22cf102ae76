package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/iskiospa/iskio-api/models"
)

func TestGenerateTokenCarriesClaims(t *testing.T) {
	user := models.User{ID: 7, Username: "iskio", Rol: models.RoleAdmin}

	signed, err := GenerateToken(user, "supersecret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("supersecret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["username"] != "iskio" || claims["rol"] != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims["id"].(float64) != 7 {
		t.Errorf("expected id 7, got %v", claims["id"])
	}

	if _, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrongsecret"), nil
	}); err == nil {
		t.Errorf("expected error with wrong secret")
	}
}

func TestTodayUsesBusinessLocation(t *testing.T) {
	previousNow, previousLoc := Now, Location
	t.Cleanup(func() { Now, Location = previousNow, previousLoc })

	if err := SetTimezone("America/Santiago"); err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// 02:00 UTC is still the previous evening in Santiago
	Now = func() time.Time { return time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC) }

	if got := Today(); got != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %s", got)
	}
}

func TestGenerateResetTokenIsUnique(t *testing.T) {
	a, b := GenerateResetToken(), GenerateResetToken()
	if a == b {
		t.Fatalf("expected distinct tokens")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
