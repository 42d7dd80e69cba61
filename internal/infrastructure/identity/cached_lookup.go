package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

const cacheKeyPrefix = "identity:"

var _ ports.IdentityLookup = (*CachedLookup)(nil)

// CachedLookup guarda en Redis la identidad resuelta (nunca la decisión de rol) bajo sha256(token).
// El TTL es min(ttl, exp del token - ahora): una entrada nunca sobrevive al token.
// Un token revocado después de llenar la caché sigue aceptado hasta que la entrada expira.
type CachedLookup struct {
	next ports.IdentityLookup
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *logger.Logger
	now  func() time.Time
}

// NewCachedLookup envuelve next. ttl debe ser > 0; con 0 no conviene construirlo.
func NewCachedLookup(next ports.IdentityLookup, rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *CachedLookup {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedLookup{next: next, rdb: rdb, ttl: ttl, log: log, now: time.Now}
}

// Lookup sirve desde Redis si hay entrada; si no, consulta next y guarda solo los aciertos.
// Un fallo de Redis nunca rechaza la petición: se consulta al servicio de auth.
func (c *CachedLookup) Lookup(ctx context.Context, token string) (*ports.Identity, error) {
	key := cacheKey(token)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var id ports.Identity
		if jsonErr := json.Unmarshal(raw, &id); jsonErr == nil {
			return &id, nil
		}
		c.log.Warn().Str("key", key).Msg("entrada de caché de identidad corrupta")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Msg("caché de identidad no disponible")
	}

	id, err := c.next.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if ttl := c.entryTTL(token); ttl > 0 {
		if payload, err := json.Marshal(id); err == nil {
			if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
				c.log.Warn().Err(err).Msg("no se pudo guardar la identidad en caché")
			}
		}
	}
	return id, nil
}

// entryTTL 0 si el token no trae exp legible o ya expiró: en ese caso no se cachea.
func (c *CachedLookup) entryTTL(token string) time.Duration {
	exp, ok := jwt.ExpiresAt(token)
	if !ok {
		return 0
	}
	left := exp.Sub(c.now())
	if left <= 0 {
		return 0
	}
	if left < c.ttl {
		return left
	}
	return c.ttl
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
