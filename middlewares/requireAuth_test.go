package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-api/middlewares"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	server := gin.New()
	server.GET("/protected", middlewares.RequireAuth(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userId": ctx.GetUint("userId"),
			"role":   ctx.GetString("role"),
		})
	})

	valid := signToken(t, jwt.MapClaims{
		"user_id":  float64(42),
		"username": "alice",
		"role":     models.RoleManager,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, jwt.MapClaims{
		"user_id": float64(42),
		"role":    models.RoleManager,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s: got status %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		role string
		want int
	}{
		{models.RoleManager, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleDeliveryCrew, http.StatusForbidden},
		{models.RoleCustomer, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		server := gin.New()
		server.GET("/staff",
			func(ctx *gin.Context) { ctx.Set("role", tt.role) },
			middlewares.RequireRoles(models.RoleManager, models.RoleAdmin),
			func(ctx *gin.Context) { ctx.Status(http.StatusOK) },
		)

		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("role %q: got status %d, want %d", tt.role, rec.Code, tt.want)
		}
	}
}
