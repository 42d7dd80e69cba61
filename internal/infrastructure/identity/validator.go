// Package identity implementa el cliente de validación de tokens que usan todos los servicios:
// consulta la identidad del portador en el servicio de auth y decide por rol.
package identity

import (
	"context"
	"errors"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

var (
	// ErrInvalidToken el servicio de auth rechazó el token.
	ErrInvalidToken = &domain.DomainError{Kind: domain.ErrUnauthorized, Message: "Invalid or expired token"}
	// ErrAccessDenied el rol del portador no está entre los permitidos.
	ErrAccessDenied = &domain.DomainError{Kind: domain.ErrForbidden, Message: "Access denied"}
)

var _ ports.TokenValidator = (*Validator)(nil)

// Validator hace una consulta de identidad por llamada y luego comprueba el rol.
// Sin reintentos: un fallo de red llega tal cual al cliente.
type Validator struct {
	lookup ports.IdentityLookup
}

// NewValidator construye el validador. Se crea una vez por proceso y se comparte entre peticiones.
func NewValidator(lookup ports.IdentityLookup) *Validator {
	return &Validator{lookup: lookup}
}

// Validate devuelve la identidad si el token es válido y su rol está en allowedRoles.
func (v *Validator) Validate(ctx context.Context, token string, allowedRoles []string) (*ports.Identity, error) {
	id, err := v.lookup.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	for _, r := range allowedRoles {
		if id.Role == r {
			return id, nil
		}
	}
	return nil, ErrAccessDenied
}
