package identity

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// NewRemoteValidator arma el validador de un servicio satélite: cliente HTTP contra el servicio de auth
// y, si CacheTTL > 0, la caché Redis delante. close libera la conexión a Redis (no-op sin caché).
func NewRemoteValidator(ctx context.Context, auth config.AuthClientConfig, rc config.RedisConfig, log *logger.Logger) (*Validator, func(), error) {
	var lookup ports.IdentityLookup = NewHTTPClient(auth.BaseURL, auth.Timeout)
	if auth.CacheTTL <= 0 {
		return NewValidator(lookup), func() {}, nil
	}
	rdb, err := NewRedisClient(ctx, rc.Addr)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Dur("ttl", auth.CacheTTL).Str("redis", rc.Addr).Msg("caché de identidades activa")
	return NewValidator(NewCachedLookup(lookup, rdb, auth.CacheTTL, log)), func() { _ = rdb.Close() }, nil
}
