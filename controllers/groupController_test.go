package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"bistro-api/initializers"
	"bistro-api/models"
)

func TestAddManagerCreatesUnknownUser(t *testing.T) {
	server := setupTestApp(t)
	manager := createUser(t, "mia", models.RoleManager)

	rec := doRequest(t, server, http.MethodPost, "/groups/manager/users", tokenFor(t, manager),
		map[string]any{"username": "newhire"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	if err := initializers.DB.Where("username = ?", "newhire").First(&user).Error; err != nil {
		t.Fatalf("user was not created: %v", err)
	}
	if user.Role != models.RoleManager {
		t.Errorf("role = %q, want %q", user.Role, models.RoleManager)
	}
}

func TestAddDeliveryCrewExistingUserOnlyGrantsRole(t *testing.T) {
	server := setupTestApp(t)
	manager := createUser(t, "mia", models.RoleManager)
	existing := createUser(t, "dan", models.RoleCustomer)

	var before int64
	initializers.DB.Model(&models.User{}).Count(&before)

	rec := doRequest(t, server, http.MethodPost, "/groups/delivery-crew/users", tokenFor(t, manager),
		map[string]any{"username": existing.Username})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var after int64
	initializers.DB.Model(&models.User{}).Count(&after)
	if after != before {
		t.Errorf("user count changed from %d to %d, want no new user", before, after)
	}

	var user models.User
	initializers.DB.First(&user, existing.ID)
	if user.Role != models.RoleDeliveryCrew {
		t.Errorf("role = %q, want %q", user.Role, models.RoleDeliveryCrew)
	}
}

func TestAddGroupUserRequiresUsername(t *testing.T) {
	server := setupTestApp(t)
	manager := createUser(t, "mia", models.RoleManager)

	rec := doRequest(t, server, http.MethodPost, "/groups/manager/users", tokenFor(t, manager),
		map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestRemoveDeliveryCrewRevertsRole(t *testing.T) {
	server := setupTestApp(t)
	manager := createUser(t, "mia", models.RoleManager)
	crew := createUser(t, "dan", models.RoleDeliveryCrew)
	token := tokenFor(t, manager)
	path := fmt.Sprintf("/groups/delivery-crew/users/%d", crew.ID)

	rec := doRequest(t, server, http.MethodDelete, path, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	initializers.DB.First(&user, crew.ID)
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want %q", user.Role, models.RoleCustomer)
	}

	// No longer a member, so a second removal misses.
	rec = doRequest(t, server, http.MethodDelete, path, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second removal: got status %d, want 404", rec.Code)
	}
}

func TestRosterRequiresManager(t *testing.T) {
	server := setupTestApp(t)
	customer := createUser(t, "alice", models.RoleCustomer)
	crew := createUser(t, "dan", models.RoleDeliveryCrew)

	for _, user := range []models.User{customer, crew} {
		rec := doRequest(t, server, http.MethodGet, "/groups/manager/users", tokenFor(t, user), nil)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: got status %d, want 403", user.Role, rec.Code)
		}
	}
}
