package controllers_test

import (
	"net/http"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	server := setupTestApp(t)

	rec := doRequest(t, server, http.MethodPost, "/auth/signup", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "sup3rsecret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: got status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, server, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "alice",
		"password": "sup3rsecret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &body)
	if body.Token == "" {
		t.Fatal("login response should carry a token")
	}

	// The issued token authenticates against protected routes.
	rec = doRequest(t, server, http.MethodGet, "/menu-items", body.Token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("menu list with issued token: got status %d, want 200", rec.Code)
	}
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	server := setupTestApp(t)

	payload := map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "sup3rsecret",
	}
	doRequest(t, server, http.MethodPost, "/auth/signup", "", payload)

	rec := doRequest(t, server, http.MethodPost, "/auth/signup", "", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	server := setupTestApp(t)

	doRequest(t, server, http.MethodPost, "/auth/signup", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "sup3rsecret",
	})

	rec := doRequest(t, server, http.MethodPost, "/auth/login", "", map[string]any{
		"username": "alice",
		"password": "not-the-password",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}
