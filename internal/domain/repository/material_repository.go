package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	List(ctx context.Context) ([]*entity.Material, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, m *entity.Material) error
	Update(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, id int64) error
}
