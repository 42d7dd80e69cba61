package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// RecipeRepository define el puerto de persistencia para Recipe y sus líneas (DIP).
// Los métodos de escritura se usan dentro de una transacción (ver recipe.TxRunner).
type RecipeRepository interface {
	List(ctx context.Context) ([]*entity.Recipe, error)
	GetByID(ctx context.Context, id int64) (*entity.Recipe, error)
	// ListIngredientLines devuelve las líneas de las recetas indicadas, en orden de inserción,
	// con nombre y unidad tomados de la tabla ingredients.
	ListIngredientLines(ctx context.Context, recipeIDs []int64) ([]entity.RecipeIngredient, error)
	ListMaterialLines(ctx context.Context, recipeIDs []int64) ([]entity.RecipeMaterial, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	Create(ctx context.Context, recipe *entity.Recipe) error
	Update(ctx context.Context, recipe *entity.Recipe) error
	Delete(ctx context.Context, id int64) error
	AddIngredientLines(ctx context.Context, recipeID int64, lines []entity.RecipeIngredient) error
	AddMaterialLines(ctx context.Context, recipeID int64, lines []entity.RecipeMaterial) error
	DeleteIngredientLines(ctx context.Context, recipeID int64) error
	DeleteMaterialLines(ctx context.Context, recipeID int64) error
}
