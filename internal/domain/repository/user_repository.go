package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las lecturas y chequeos ignoran usuarios deshabilitados.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetActiveByID(ctx context.Context, id int64) (*entity.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*entity.User, error)
	// Exists* buscan entre usuarios activos; excludeID > 0 excluye esa fila del chequeo.
	ExistsActiveByFullName(ctx context.Context, fullName string, excludeID int64) (bool, error)
	ExistsActiveByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsActiveByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Disable(ctx context.Context, id int64) error
}
