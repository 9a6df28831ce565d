package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radarclientes/radar-service/internal/api/http/handlers"
	"github.com/radarclientes/radar-service/internal/observability"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

func testApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	return app
}

func TestErrorMiddlewareMapsDomainErrors(t *testing.T) {
	app := testApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("Email já cadastrado", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &body))
	require.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	require.Equal(t, "Email já cadastrado", body.Error.Message)
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app := testApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := testApp()
	health := handlers.NewHealthHandler("Radar de Clientes API", "1.0.0", nil, nil)
	app.Get("/api/", health.Root)
	app.Get("/api/health", health.Live)
	app.Get("/api/health/ready", health.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"healthy"}`, string(data))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.NoError(t, err)
	data, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "Radar de Clientes API")

	// Without configured stores readiness reports unavailable.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
