package recipe

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// RecipeTxRunner ejecuta fn dentro de una transacción con un repositorio de recetas atado a ella.
// Si fn devuelve error no persiste nada de lo escrito.
type RecipeTxRunner interface {
	RunRecipe(ctx context.Context, fn func(repo repository.RecipeRepository) error) error
}

// SheetGenerator genera la ficha PDF de una receta ya ensamblada.
type SheetGenerator interface {
	GenerateRecipeSheet(ctx context.Context, recipe *dto.RecipeResponse) ([]byte, error)
}
