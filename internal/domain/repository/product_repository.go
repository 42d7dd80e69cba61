package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	// ImageInUse indica si algún producto distinto de excludeID referencia el archivo image.
	ImageInUse(ctx context.Context, image string, excludeID int64) (bool, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update solo toca la columna de imagen si withImage es true.
	Update(ctx context.Context, product *entity.Product, withImage bool) error
	Delete(ctx context.Context, id int64) error
}

// ProductTypeRepository define el puerto de persistencia para ProductType (DIP).
type ProductTypeRepository interface {
	List(ctx context.Context) ([]*entity.ProductType, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, pt *entity.ProductType) error
	Update(ctx context.Context, pt *entity.ProductType) error
	Delete(ctx context.Context, id int64) error
}
