package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newMessagesApp() *fiber.App {
	h := New(nil, nil, nil, nil)
	app := fiber.New()
	app.Get("/api/locales", h.GetLocales)
	app.Get("/api/messages/:locale", h.GetMessages)
	return app
}

func TestGetMessages(t *testing.T) {
	app := newMessagesApp()

	tests := []struct {
		locale     string
		wantStatus int
	}{
		{"en", fiber.StatusOK},
		{"es", fiber.StatusOK},
		{"pt", fiber.StatusOK},
		{"de", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/messages/"+tt.locale, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tt.wantStatus {
			t.Errorf("GET /api/messages/%s = %d, want %d", tt.locale, resp.StatusCode, tt.wantStatus)
			continue
		}
		if tt.wantStatus != fiber.StatusOK {
			continue
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		var messages map[string]any
		if err := json.Unmarshal(body, &messages); err != nil {
			t.Errorf("catalog for %s is not valid JSON: %v", tt.locale, err)
		}
		if _, ok := messages["navbar"]; !ok {
			t.Errorf("catalog for %s is missing the navbar section", tt.locale)
		}
	}
}

func TestGetLocales(t *testing.T) {
	app := newMessagesApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/locales", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Locales []string `json:"locales"`
			Default string   `json:"default"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.Default != "en" {
		t.Errorf("default locale = %q, want en", envelope.Data.Default)
	}
	if len(envelope.Data.Locales) != 3 {
		t.Errorf("got %d locales, want 3", len(envelope.Data.Locales))
	}
}
