package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitalsboard/vitals/internal/config"
	"github.com/vitalsboard/vitals/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "vitals-test.db")
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

	cfg := config.Config{
		Port:         "0",
		DBPath:       databasePath,
		Timezone:     "UTC",
		StoreTimeout: 2 * time.Second,
		JWT: config.JWTConfig{
			Secret:   "test-secret-key",
			Issuer:   "vitals",
			Audience: "vitals-dashboard",
			Expiry:   time.Hour,
		},
	}

	handler := NewHandler(db.NewRepositories(database), cfg, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSONMap(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	payload := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func decodeJSONList(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	defer response.Body.Close()

	payload := []map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func registerTestUser(t *testing.T, app *fiber.App, name string, email string, password string) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/UserAuth/Register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d", email, response.StatusCode)
	}
	_ = response.Body.Close()
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/UserAuth/Login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, response.StatusCode)
	}

	payload := decodeJSONMap(t, response)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("login %s: empty token in response %v", email, payload)
	}
	return token
}
