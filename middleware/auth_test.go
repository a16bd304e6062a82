package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaker-booking/constants"
	"speaker-booking/models/user"
	"speaker-booking/utils"
)

func newProtectedApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newProtectedApp(RequireAuth())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := newProtectedApp(RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(RequireAuth())

	resp, err := app.Test(requestWithToken("not-a-jwt"))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&user.User{ID: 1, Uuid: "abc", UserType: user.UserTypeUser})
	require.NoError(t, err)

	app := newProtectedApp(RequireAuth())
	resp, err := app.Test(requestWithToken(token))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&user.User{ID: 1, Uuid: "abc", UserType: user.UserTypeUser})
	require.NoError(t, err)

	app := newProtectedApp(RequireRole(constants.RoleSpeaker))
	resp, err := app.Test(requestWithToken(token))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleMatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&user.User{ID: 1, Uuid: "abc", UserType: user.UserTypeSpeaker})
	require.NoError(t, err)

	app := newProtectedApp(RequireRole(constants.RoleSpeaker))
	resp, err := app.Test(requestWithToken(token))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
