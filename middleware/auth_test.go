package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", Protected(testSecret), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": UserID(c)})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	if status := doRequest(t, newTestApp(), ""); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": 1, "rol": "admin", "exp": time.Now().Add(-time.Minute).Unix()})
	if status := doRequest(t, newTestApp(), token); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": 1, "rol": "staff", "exp": time.Now().Add(time.Hour).Unix()})
	if status := doRequest(t, newTestApp(), token); status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestProtectedAcceptsAdmin(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "12", "rol": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	if status := doRequest(t, newTestApp(), token); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestExtractUserIDFormats(t *testing.T) {
	cases := []struct {
		claims jwt.MapClaims
		want   uint
		ok     bool
	}{
		{jwt.MapClaims{"id": float64(3)}, 3, true},
		{jwt.MapClaims{"id": "44"}, 44, true},
		{jwt.MapClaims{"id": "abc"}, 0, false},
		{jwt.MapClaims{}, 0, false},
		{jwt.MapClaims{"id": true}, 0, false},
	}
	for _, tc := range cases {
		got, err := extractUserID(tc.claims)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("claims %v: expected %d, got %d (%v)", tc.claims, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("claims %v: expected error", tc.claims)
		}
	}
}
