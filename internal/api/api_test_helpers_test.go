package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/db"
	"github.com/terraincognita07/florette/internal/i18n"
	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-for-florette-api-tests"

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppInLocation(t, time.UTC)
}

func newTestAppInLocation(t *testing.T, location *time.Location) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "florette-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, location, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	return &testApp{
		app:      NewApp(handler, AppOptions{AccessLog: io.Discard}),
		database: database,
		handler:  handler,
	}
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string, mustChange bool) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Email:              email,
		PasswordHash:       string(passwordHash),
		MustChangePassword: mustChange,
		CreatedAt:          testNow,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func authTokenForUser(t *testing.T, user models.User) string {
	t.Helper()

	token, err := services.BuildAuthToken([]byte(testSecretKey), user.ID, user.PasswordHash, services.DefaultAuthTokenTTL, testNow)
	if err != nil {
		t.Fatalf("build auth token: %v", err)
	}
	return token
}

// do sends a request with an optional JSON body and bearer token.
func (ta *testApp) do(t *testing.T, method string, target string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(response.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func expectError(t *testing.T, response *http.Response, status int, message string) {
	t.Helper()
	expectStatus(t, response, status)
	payload := decodeJSON[map[string]any](t, response)
	if payload["error"] != message {
		t.Fatalf("expected error %q, got %#v", message, payload["error"])
	}
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
