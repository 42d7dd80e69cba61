package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/identity"
)

func identityServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, identity.IdentityPath, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPClient_Lookup200(t *testing.T) {
	srv, hits := identityServer(t, http.StatusOK, `{"userID":7,"username":"bob","fullName":"Bob B","email":"bob@x.io","userRole":"manager"}`)
	c := identity.NewHTTPClient(srv.URL, time.Second)

	id, err := c.Lookup(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.UserID)
	assert.Equal(t, "manager", id.Role)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestHTTPClient_No200EsUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError, http.StatusNotFound} {
		srv, _ := identityServer(t, status, `{"detail":"nope"}`)
		_, err := identity.NewHTTPClient(srv.URL, time.Second).Lookup(context.Background(), "tok-123")
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "status %d", status)
	}
}

func TestHTTPClient_CuerpoInvalidoNoEsUnauthorized(t *testing.T) {
	srv, _ := identityServer(t, http.StatusOK, `no-json`)
	_, err := identity.NewHTTPClient(srv.URL, time.Second).Lookup(context.Background(), "tok-123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHTTPClient_ServicioCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := identity.NewHTTPClient(url, time.Second).Lookup(context.Background(), "tok-123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidatorSobreHTTP_UnaLlamadaPorValidacion(t *testing.T) {
	srv, hits := identityServer(t, http.StatusOK, `{"username":"ana","userRole":"staff"}`)
	v := identity.NewValidator(identity.NewHTTPClient(srv.URL, time.Second))

	for i := 0; i < 3; i++ {
		_, err := v.Validate(context.Background(), "tok-123", []string{"staff"})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(hits), "sin caché, una llamada por validación")

	_, err := v.Validate(context.Background(), "tok-123", []string{"admin"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestValidatorSobreHTTP_SinRolEsAccesoDenegado(t *testing.T) {
	srv, _ := identityServer(t, http.StatusOK, `{"userID":9,"username":"ghost"}`)
	v := identity.NewValidator(identity.NewHTTPClient(srv.URL, time.Second))

	_, err := v.Validate(context.Background(), "tok-123", []string{"admin", "manager", "staff"})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Access denied", err.Error())
}
