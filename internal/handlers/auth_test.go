package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAPIKeyMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewAPIKeyMiddleware("secret"))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name     string
		key      string
		expected int
	}{
		{"missing key", "", fiber.StatusUnauthorized},
		{"wrong key", "nope", fiber.StatusUnauthorized},
		{"correct key", "secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expected {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expected)
			}
		})
	}
}
