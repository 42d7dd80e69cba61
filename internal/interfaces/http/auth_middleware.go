package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// LocalIdentity key de c.Locals con la identidad validada.
const LocalIdentity = "identity"

// Conjuntos de roles por endpoint.
var (
	RolesAdmin = []string{entity.RoleAdmin}
	RolesStaff = []string{entity.RoleAdmin, entity.RoleManager, entity.RoleStaff}
)

// RequireRoles valida el Bearer Token contra el servicio de auth y exige uno de roles.
// Es siempre el primer paso de la ruta: si falla, el handler no se ejecuta y el store no se toca.
func RequireRoles(v ports.TokenValidator, roles ...string) fiber.Handler {
	allowed := append([]string(nil), roles...)
	return func(c *fiber.Ctx) error {
		token, ok := BearerToken(c)
		if !ok {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Not authenticated"})
		}
		id, err := v.Validate(c.UserContext(), token, allowed)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// BearerToken extrae el token de "Authorization: Bearer <token>".
func BearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetIdentity devuelve la identidad del contexto (después de RequireRoles).
func GetIdentity(c *fiber.Ctx) *ports.Identity {
	id, _ := c.Locals(LocalIdentity).(*ports.Identity)
	return id
}
