package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ErrBadCredentials usuario o contraseña incorrectos (o cuenta deshabilitada).
var ErrBadCredentials = &domain.DomainError{Kind: domain.ErrUnauthorized, Message: "Incorrect username or password"}

// AuthUseCase casos de uso de autenticación: emisión de tokens e identidad del portador.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

var _ ports.IdentityLookup = (*AuthUseCase)(nil)

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// IssueToken verifica username/password contra la cuenta activa y firma un JWT.
func (uc *AuthUseCase) IssueToken(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, ErrBadCredentials
	}
	user, err := uc.userRepo.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Lookup valida el token y vuelve a leer el usuario: una cuenta deshabilitada pierde acceso
// aunque su token no haya expirado, y el rol devuelto es siempre el actual.
func (uc *AuthUseCase) Lookup(ctx context.Context, token string) (*ports.Identity, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetActiveByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toIdentity(user), nil
}

// Me devuelve la identidad del portador del token.
func (uc *AuthUseCase) Me(ctx context.Context, token string) (*dto.IdentityResponse, error) {
	id, err := uc.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	return &dto.IdentityResponse{
		UserID:   id.UserID,
		Username: id.Username,
		FullName: id.FullName,
		Email:    id.Email,
		UserRole: id.Role,
	}, nil
}

func toIdentity(u *entity.User) *ports.Identity {
	return &ports.Identity{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
