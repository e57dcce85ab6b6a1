package auth_test

import (
	"net/http/httptest"
	"testing"

	"stock-terminal/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		query  string
		want   int
	}{
		{"ValidHeader", "secret", "secret", "", fiber.StatusOK},
		{"ValidQuery", "secret", "", "secret", fiber.StatusOK},
		{"WrongKey", "secret", "guess", "", fiber.StatusUnauthorized},
		{"MissingKey", "secret", "", "", fiber.StatusUnauthorized},
		{"Disabled", "", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.apiKey}))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			target := "/"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
