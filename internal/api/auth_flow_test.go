package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterValidationAndDuplicates(t *testing.T) {
	app, _ := newTestApp(t)

	missingField := performJSON(t, app, http.MethodPost, "/api/UserAuth/Register", "", fiber.Map{
		"name":  "Alice",
		"email": "a@x.com",
	})
	if missingField.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", missingField.StatusCode)
	}
	_ = missingField.Body.Close()

	badEmail := performJSON(t, app, http.MethodPost, "/api/UserAuth/Register", "", fiber.Map{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "Secret123",
	})
	if badEmail.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %d", badEmail.StatusCode)
	}
	_ = badEmail.Body.Close()

	registerTestUser(t, app, "Alice", "a@x.com", "Secret123")

	duplicate := performJSON(t, app, http.MethodPost, "/api/UserAuth/Register", "", fiber.Map{
		"name":     "Mallory",
		"email":    "A@X.COM",
		"password": "Other456",
	})
	if duplicate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", duplicate.StatusCode)
	}
	payload := decodeJSONMap(t, duplicate)
	if payload["error"] != "User already exists" {
		t.Fatalf("unexpected duplicate message: %v", payload)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Alice", "a@x.com", "Secret123")

	wrongPassword := performJSON(t, app, http.MethodPost, "/api/UserAuth/Login", "", fiber.Map{
		"email":    "a@x.com",
		"password": "wrong",
	})
	unknownEmail := performJSON(t, app, http.MethodPost, "/api/UserAuth/Login", "", fiber.Map{
		"email":    "nobody@x.com",
		"password": "Secret123",
	})

	if wrongPassword.StatusCode != http.StatusUnauthorized || unknownEmail.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both failures, got %d and %d", wrongPassword.StatusCode, unknownEmail.StatusCode)
	}

	wrongPayload := decodeJSONMap(t, wrongPassword)
	unknownPayload := decodeJSONMap(t, unknownEmail)
	if wrongPayload["message"] != unknownPayload["message"] {
		t.Fatalf("failure messages differ: %v vs %v", wrongPayload, unknownPayload)
	}
	if wrongPayload["success"] != false {
		t.Fatalf("expected success=false, got %v", wrongPayload)
	}
	if wrongPayload["message"] != "Invalid username or password" {
		t.Fatalf("unexpected failure message: %v", wrongPayload["message"])
	}
}

func TestLoginIssuesTokenWithExpectedClaims(t *testing.T) {
	app, handler := newTestApp(t)
	registerTestUser(t, app, "Alice", "a@x.com", "Secret123")
	token := loginTestUser(t, app, "a@x.com", "Secret123")

	claims, err := handler.parseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}

	userID, err := claims.userID()
	if err != nil {
		t.Fatalf("subject claim: %v", err)
	}
	if userID == 0 {
		t.Fatal("expected non-zero subject user id")
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email claim a@x.com, got %q", claims.Email)
	}
	if claims.Name != "Alice" {
		t.Fatalf("expected name claim Alice, got %q", claims.Name)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti claim")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(claims.IssuedAt.Time) {
		t.Fatal("expected expiry after issuance")
	}
}

func TestLogoutRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Alice", "a@x.com", "Secret123")
	token := loginTestUser(t, app, "a@x.com", "Secret123")

	unauthenticated := performJSON(t, app, http.MethodPost, "/api/UserAuth/Logout", "", nil)
	if unauthenticated.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", unauthenticated.StatusCode)
	}
	_ = unauthenticated.Body.Close()

	authenticated := performJSON(t, app, http.MethodPost, "/api/UserAuth/Logout", token, nil)
	if authenticated.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", authenticated.StatusCode)
	}
	payload := decodeJSONMap(t, authenticated)
	if payload["message"] != "User logged out!" {
		t.Fatalf("unexpected logout message: %v", payload)
	}

	// Logout is stateless: the token keeps working until it expires.
	afterLogout := performJSON(t, app, http.MethodGet, "/api/StepsChart", token, nil)
	if afterLogout.StatusCode != http.StatusOK {
		t.Fatalf("expected token to remain valid after logout, got %d", afterLogout.StatusCode)
	}
	_ = afterLogout.Body.Close()
}

func TestProtectedRoutesRejectMissingOrGarbageTokens(t *testing.T) {
	app, _ := newTestApp(t)

	missing := performJSON(t, app, http.MethodGet, "/api/StepsChart", "", nil)
	if missing.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", missing.StatusCode)
	}
	_ = missing.Body.Close()

	garbage := performJSON(t, app, http.MethodGet, "/api/StepsChart", "not.a.token", nil)
	if garbage.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", garbage.StatusCode)
	}
	_ = garbage.Body.Close()
}

func TestProfileRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Alice", "a@x.com", "Secret123")
	token := loginTestUser(t, app, "a@x.com", "Secret123")

	initial := performJSON(t, app, http.MethodGet, "/api/Profile", token, nil)
	if initial.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", initial.StatusCode)
	}
	initialPayload := decodeJSONMap(t, initial)
	if initialPayload["email"] != "a@x.com" || initialPayload["name"] != "Alice" {
		t.Fatalf("unexpected profile: %v", initialPayload)
	}
	if initialPayload["age"] != nil {
		t.Fatalf("expected unset age, got %v", initialPayload["age"])
	}

	updated := performJSON(t, app, http.MethodPut, "/api/Profile", token, fiber.Map{
		"age":    30,
		"weight": 64.5,
		"gender": "female",
	})
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", updated.StatusCode)
	}
	updatedPayload := decodeJSONMap(t, updated)
	if updatedPayload["age"] != float64(30) {
		t.Fatalf("expected age 30, got %v", updatedPayload["age"])
	}
	if updatedPayload["weight"] != 64.5 {
		t.Fatalf("expected weight 64.5, got %v", updatedPayload["weight"])
	}
	if updatedPayload["gender"] != "female" {
		t.Fatalf("expected gender female, got %v", updatedPayload["gender"])
	}
}
