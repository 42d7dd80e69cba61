package http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

// buildGatedApp ruta /protected detrás de RequireRoles; reached indica si el handler corrió.
func buildGatedApp(allowed ...string) (*fiber.App, *tokenLookup, *bool) {
	v, lookup := newValidator()
	reached := false
	app := newTestApp()
	app.Get("/protected", apphttp.RequireRoles(v, allowed...), func(c *fiber.Ctx) error {
		reached = true
		id := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{"username": id.Username, "role": id.Role})
	})
	return app, lookup, &reached
}

func TestRequireRoles_RolPermitido(t *testing.T) {
	app, _, reached := buildGatedApp(apphttp.RolesAdmin...)
	resp := doJSON(t, app, http.MethodGet, "/protected", "admin-token", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "root", body["username"])
	assert.Equal(t, "admin", body["role"])
	assert.True(t, *reached)
}

func TestRequireRoles_MultiRol(t *testing.T) {
	app, _, _ := buildGatedApp(apphttp.RolesStaff...)
	for _, tok := range []string{"admin-token", "manager-token", "staff-token"} {
		resp := doJSON(t, app, http.MethodGet, "/protected", tok, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, tok)
	}
}

func TestRequireRoles_StaffEnRutaAdmin_403(t *testing.T) {
	app, _, reached := buildGatedApp(apphttp.RolesAdmin...)
	resp := doJSON(t, app, http.MethodGet, "/protected", "staff-token", "")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "Access denied", body.Message)
	assert.False(t, *reached)
}

func TestRequireRoles_TokenInvalido_401(t *testing.T) {
	app, lookup, reached := buildGatedApp(apphttp.RolesStaff...)
	resp := doJSON(t, app, http.MethodGet, "/protected", "expired", "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	body := decode[errorBody](t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.Equal(t, "Invalid or expired token", body.Message)
	assert.False(t, *reached)
	assert.Equal(t, 1, lookup.calls)
}

func TestRequireRoles_SinHeader_401SinConsultarAuth(t *testing.T) {
	app, lookup, reached := buildGatedApp(apphttp.RolesStaff...)

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
			body := decode[errorBody](t, resp)
			assert.Equal(t, "Not authenticated", body.Message)
			resp.Body.Close()
		}
	}
	assert.False(t, *reached)
	assert.Equal(t, 0, lookup.calls)
}

func TestRequireRoles_FalloDelServicioDeAuth_500Generico(t *testing.T) {
	app, lookup, reached := buildGatedApp(apphttp.RolesStaff...)
	lookup.err = errors.New("dial tcp 10.0.0.5:8000: connection refused")

	resp := doJSON(t, app, http.MethodGet, "/protected", "admin-token", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.5", "no se filtran detalles internos")
	assert.False(t, *reached)
}
