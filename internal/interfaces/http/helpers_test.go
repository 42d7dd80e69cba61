package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/identity"
	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

// tokenLookup identidades por token; cualquier otro token es inválido.
type tokenLookup struct {
	mu     sync.Mutex
	tokens map[string]*ports.Identity
	err    error
	calls  int
}

func (l *tokenLookup) Lookup(_ context.Context, token string) (*ports.Identity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	id, ok := l.tokens[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	cp := *id
	return &cp, nil
}

// newValidator tokens "admin-token", "manager-token", "staff-token".
func newValidator() (*identity.Validator, *tokenLookup) {
	l := &tokenLookup{tokens: map[string]*ports.Identity{
		"admin-token":   {UserID: 1, Username: "root", Role: entity.RoleAdmin},
		"manager-token": {UserID: 2, Username: "ana", Role: entity.RoleManager},
		"staff-token":   {UserID: 3, Username: "bob", Role: entity.RoleStaff},
	}}
	return identity.NewValidator(l), l
}

func newTestApp() *fiber.App {
	return apphttp.NewApp(apphttp.AppConfig{Name: "test"}, nil)
}

func do(t *testing.T, app *fiber.App, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return do(t, app, method, path, token, r, fiber.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
