package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// Verificar en tiempo de compilación que HTTPClient implementa IdentityLookup.
var _ ports.IdentityLookup = (*HTTPClient)(nil)

// IdentityPath endpoint "quién soy" del servicio de auth.
const IdentityPath = "/auth/users/me"

// HTTPClient consulta GET {baseURL}/auth/users/me con el bearer token del cliente.
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPClient construye el cliente. timeout <= 0 deja el cliente sin límite propio.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:        baseURL + IdentityPath,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup hace exactamente una petición. Cualquier respuesta distinta de 200 es domain.ErrUnauthorized;
// los fallos de transporte o de decodificación se devuelven envueltos (500 para el cliente).
func (c *HTTPClient) Lookup(ctx context.Context, token string) (*ports.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("identity: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))
		return nil, domain.ErrUnauthorized
	}

	var id ports.Identity
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&id); err != nil {
		return nil, fmt.Errorf("identity: decodificar respuesta: %w", err)
	}
	// Sin userRole la identidad no coincide con ningún rol permitido: el validador responde 403.
	return &id, nil
}
