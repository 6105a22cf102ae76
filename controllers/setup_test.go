package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/config"
	"github.com/iskiospa/iskio-api/db/dbtest"
	"github.com/iskiospa/iskio-api/models"
	"github.com/iskiospa/iskio-api/routes"
	"github.com/iskiospa/iskio-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   testSecret,
		JWTTTLHours: 1,
		CORSOrigins: "*",
		FrontendURL: "http://localhost:5173",
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	return routes.NewApp(testConfig()), conn
}

func createUser(t *testing.T, conn *gorm.DB, username, password, rol string, email string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{Username: username, PasswordHash: string(hashed), Rol: rol}
	if email != "" {
		user.Email = &email
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func adminToken(t *testing.T, conn *gorm.DB) string {
	return tokenFor(t, createUser(t, conn, "admin", "secreto", models.RoleAdmin, ""))
}

// doJSON sends body as JSON and decodes the response into out when out is non-nil.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode %s %s (%d): %v: %s", method, path, resp.StatusCode, err, raw)
		}
	}
	return resp.StatusCode
}

type sentMail struct {
	To, Subject, Body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// waitFor polls until n messages were sent; delivery is asynchronous.
func (m *recordingMailer) waitFor(t *testing.T, n int) []sentMail {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		if len(m.sent) >= n {
			out := append([]sentMail(nil), m.sent...)
			m.mu.Unlock()
			return out
		}
		m.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d emails, got %d", n, len(m.sent))
	return nil
}

func useMailer(t *testing.T) *recordingMailer {
	t.Helper()
	mailer := &recordingMailer{}
	previous := utils.Mail
	utils.Mail = mailer
	t.Cleanup(func() { utils.Mail = previous })
	return mailer
}

func fixNow(t *testing.T, now time.Time) {
	t.Helper()
	previous := utils.Now
	utils.Now = func() time.Time { return now }
	t.Cleanup(func() { utils.Now = previous })
}

func createService(t *testing.T, conn *gorm.DB, service models.Service) models.Service {
	t.Helper()
	if err := conn.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return service
}
