package ports

import "context"

// Identity usuario autenticado tal como lo devuelve el servicio de auth.
type Identity struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"userRole"`
}

// IdentityLookup resuelve un bearer token a su identidad, sin decidir sobre roles.
// Devuelve domain.ErrUnauthorized si el token no es válido.
type IdentityLookup interface {
	Lookup(ctx context.Context, token string) (*Identity, error)
}

// TokenValidator puerta de entrada de cada endpoint protegido.
// Devuelve domain.ErrUnauthorized o domain.ErrForbidden según corresponda.
type TokenValidator interface {
	Validate(ctx context.Context, token string, allowedRoles []string) (*Identity, error)
}
