package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// MerchandiseRepository define el puerto de persistencia para Merchandise (DIP).
type MerchandiseRepository interface {
	List(ctx context.Context) ([]*entity.Merchandise, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, m *entity.Merchandise) error
	Update(ctx context.Context, m *entity.Merchandise) error
	Delete(ctx context.Context, id int64) error
}
