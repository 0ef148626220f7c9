package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailTestRoutes_NotRegisteredInProd(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	app := fiber.New()
	NewHttpRouter().registerMailTestRoutes(app)

	for _, route := range []string{"/test-email", "/test-plain-email"} {
		req := httptest.NewRequest(http.MethodPost, route, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "route %s must not exist outside dev", route)
	}
}

func TestMailTestRoutes_RegisteredInDev(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	app := fiber.New()
	NewHttpRouter().registerMailTestRoutes(app)

	// Without a recipient the handlers reject the request, which proves the
	// route exists without sending any mail.
	for _, route := range []string{"/test-email", "/test-plain-email"} {
		req := httptest.NewRequest(http.MethodPost, route, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "route %s should exist in dev", route)
	}
}
