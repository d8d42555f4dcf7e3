package middleware

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/furqanahmad03/rent-and-home/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func signToken(t *testing.T, cfg *config.Config, userID int, email string, expiry time.Duration) string {
	t.Helper()
	claims := &JWTClaims{
		UserID: userID,
		Email:  email,
		Name:   "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthRequired(t *testing.T) {
	cfg := testConfig()

	app := fiber.New()
	app.Get("/protected", AuthRequired(cfg), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("%d:%s:%s", GetUserID(c), GetUserEmail(c), GetUserName(c)))
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, cfg, 7, "a@b.com", -time.Hour), fiber.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, cfg, 7, "a@b.com", time.Hour), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus == fiber.StatusOK {
				body, err := io.ReadAll(resp.Body)
				if err != nil {
					t.Fatalf("failed to read body: %v", err)
				}
				if got := string(body); got != "7:a@b.com:Ana" {
					t.Errorf("claims = %q, want %q", got, "7:a@b.com:Ana")
				}
			}
		})
	}
}

func TestAuthOptional(t *testing.T) {
	cfg := testConfig()

	app := fiber.New()
	app.Get("/public", AuthOptional(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": GetUserID(c)})
	})

	// Anonymous requests pass through with no identity
	resp, err := app.Test(httptest.NewRequest("GET", "/public", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("anonymous status = %d, want 200", resp.StatusCode)
	}

	// Invalid tokens are ignored rather than rejected
	req := httptest.NewRequest("GET", "/public", nil)
	req.Header.Set("Authorization", "Bearer broken")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("invalid token status = %d, want 200", resp.StatusCode)
	}

	// Valid tokens attach the user
	req = httptest.NewRequest("GET", "/public", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, 42, "x@y.com", time.Hour))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid token status = %d, want 200", resp.StatusCode)
	}
}
