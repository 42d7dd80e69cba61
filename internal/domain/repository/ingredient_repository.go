package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
type IngredientRepository interface {
	List(ctx context.Context) ([]*entity.Ingredient, error)
	// ExistsByName compara sin distinguir mayúsculas; excludeID > 0 excluye esa fila.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, ing *entity.Ingredient) error
	// Update devuelve domain.ErrNotFound si el id no existe; deja en ing la fila guardada.
	Update(ctx context.Context, ing *entity.Ingredient) error
	Delete(ctx context.Context, id int64) error
}
