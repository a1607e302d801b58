package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoBodyApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.JSONBody())
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"body": middleware.Body(c)})
	})
	return app
}

func TestJSONBody_Malformed(t *testing.T) {
	app := echoBodyApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name": `))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Bad Request", body["message"])
	assert.Contains(t, body["error"], "malformed JSON request body")
}

func TestJSONBody_Decoded(t *testing.T) {
	app := echoBodyApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"Ann"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"body":{"name":"Ann"}}`, string(raw))
}

func TestJSONBody_IgnoresOtherContentTypes(t *testing.T) {
	app := echoBodyApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name": `))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"body":null}`, string(raw))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(middleware.RequestLogger(zerolog.New(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "GET", first["method"])
	assert.Equal(t, "/ok", first["path"])
	assert.Equal(t, float64(http.StatusNoContent), first["status"])
	assert.Equal(t, "/missing", second["path"])
	assert.Equal(t, float64(http.StatusNotFound), second["status"])
}
