package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var (
	errRecipeNotFound = domain.NotFound("Recipe not found")
	errDuplicateName  = domain.Duplicate("Recipe name already exists.")
	errBadReference   = &domain.DomainError{Kind: domain.ErrInvalidReference, Message: "ProductID, IngredientID or MaterialID does not exist"}
)

// UseCase compone recetas: lectura con líneas anidadas y escrituras de reemplazo completo,
// cada una en una sola transacción.
type UseCase struct {
	repo repository.RecipeRepository
	tx   RecipeTxRunner
}

// NewUseCase construye el caso de uso. repo se usa para lecturas fuera de transacción.
func NewUseCase(repo repository.RecipeRepository, tx RecipeTxRunner) *UseCase {
	return &UseCase{repo: repo, tx: tx}
}

// List ensambla todas las recetas con tres consultas (recetas, líneas de ingredientes,
// líneas de materiales) agrupadas por id de receta.
func (uc *UseCase) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return []dto.RecipeResponse{}, nil
	}
	ids := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	if err := uc.attachLines(ctx, recipes, ids); err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	return out, nil
}

// Get ensambla una receta; 404 si no existe.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.RecipeResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errRecipeNotFound
	}
	if err := uc.attachLines(ctx, []*entity.Recipe{r}, []int64{id}); err != nil {
		return nil, err
	}
	out := toRecipeResponse(r)
	return &out, nil
}

// Create inserta la receta y sus líneas en el orden recibido.
func (uc *UseCase) Create(ctx context.Context, in dto.RecipeRequest) (*dto.RecipeCreatedResponse, error) {
	r := recipeFromRequest(in)
	err := uc.tx.RunRecipe(ctx, func(repo repository.RecipeRepository) error {
		if err := checkName(ctx, repo, r.Name, 0); err != nil {
			return err
		}
		if err := repo.Create(ctx, r); err != nil {
			return err
		}
		if err := insertIngredientLines(ctx, repo, r); err != nil {
			return err
		}
		return insertMaterialLines(ctx, repo, r)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &dto.RecipeCreatedResponse{Message: "Recipe created successfully", RecipeID: r.ID}, nil
}

// Update reemplaza la fila padre y el conjunto completo de líneas: una línea omitida se borra.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.RecipeRequest) (*dto.MessageResponse, error) {
	r := recipeFromRequest(in)
	r.ID = id
	err := uc.tx.RunRecipe(ctx, func(repo repository.RecipeRepository) error {
		if err := checkName(ctx, repo, r.Name, id); err != nil {
			return err
		}
		if err := repo.Update(ctx, r); err != nil {
			if domain.IsNotFound(err) {
				return errRecipeNotFound
			}
			return err
		}
		if err := repo.DeleteIngredientLines(ctx, id); err != nil {
			return err
		}
		if err := insertIngredientLines(ctx, repo, r); err != nil {
			return err
		}
		if err := repo.DeleteMaterialLines(ctx, id); err != nil {
			return err
		}
		return insertMaterialLines(ctx, repo, r)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &dto.MessageResponse{Message: "Recipe updated successfully"}, nil
}

// Delete borra líneas de ingredientes, luego de materiales y por último la receta.
// No comprueba existencia previa.
func (uc *UseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	err := uc.tx.RunRecipe(ctx, func(repo repository.RecipeRepository) error {
		if err := repo.DeleteIngredientLines(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteMaterialLines(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &dto.MessageResponse{Message: "Recipe deleted successfully"}, nil
}

func (uc *UseCase) attachLines(ctx context.Context, recipes []*entity.Recipe, ids []int64) error {
	ingLines, err := uc.repo.ListIngredientLines(ctx, ids)
	if err != nil {
		return err
	}
	matLines, err := uc.repo.ListMaterialLines(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[int64]*entity.Recipe, len(recipes))
	for _, r := range recipes {
		r.Ingredients = r.Ingredients[:0]
		r.Materials = r.Materials[:0]
		byID[r.ID] = r
	}
	for _, l := range ingLines {
		if r, ok := byID[l.RecipeID]; ok {
			r.Ingredients = append(r.Ingredients, l)
		}
	}
	for _, l := range matLines {
		if r, ok := byID[l.RecipeID]; ok {
			r.Materials = append(r.Materials, l)
		}
	}
	return nil
}

func checkName(ctx context.Context, repo repository.RecipeRepository, name string, excludeID int64) error {
	taken, err := repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errDuplicateName
	}
	return nil
}

func insertIngredientLines(ctx context.Context, repo repository.RecipeRepository, r *entity.Recipe) error {
	if len(r.Ingredients) == 0 {
		return nil
	}
	return repo.AddIngredientLines(ctx, r.ID, r.Ingredients)
}

func insertMaterialLines(ctx context.Context, repo repository.RecipeRepository, r *entity.Recipe) error {
	if len(r.Materials) == 0 {
		return nil
	}
	return repo.AddMaterialLines(ctx, r.ID, r.Materials)
}

// translate da mensaje a las violaciones de FK que vienen del store sin él.
func translate(err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, domain.ErrInvalidReference) {
		return errBadReference
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return errDuplicateName
	}
	return err
}

func recipeFromRequest(in dto.RecipeRequest) *entity.Recipe {
	r := &entity.Recipe{
		ProductID:   in.ProductID,
		Name:        strings.TrimSpace(in.RecipeName),
		Ingredients: make([]entity.RecipeIngredient, 0, len(in.Ingredients)),
		Materials:   make([]entity.RecipeMaterial, 0, len(in.Materials)),
	}
	for _, l := range in.Ingredients {
		r.Ingredients = append(r.Ingredients, entity.RecipeIngredient{
			IngredientID: l.IngredientID,
			Amount:       l.Amount,
			Measurement:  strings.TrimSpace(l.Measurement),
		})
	}
	for _, l := range in.Materials {
		r.Materials = append(r.Materials, entity.RecipeMaterial{
			MaterialID:  l.MaterialID,
			Quantity:    l.Quantity,
			Measurement: strings.TrimSpace(l.Measurement),
		})
	}
	return r
}

func toRecipeResponse(r *entity.Recipe) dto.RecipeResponse {
	out := dto.RecipeResponse{
		RecipeID:    r.ID,
		ProductID:   r.ProductID,
		RecipeName:  r.Name,
		Ingredients: make([]dto.RecipeIngredientResponse, 0, len(r.Ingredients)),
		Materials:   make([]dto.RecipeMaterialResponse, 0, len(r.Materials)),
	}
	for _, l := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, dto.RecipeIngredientResponse{
			RecipeIngredientID: l.ID,
			IngredientID:       l.IngredientID,
			IngredientName:     l.IngredientName,
			Amount:             l.Amount,
			Measurement:        l.Measurement,
		})
	}
	for _, l := range r.Materials {
		out.Materials = append(out.Materials, dto.RecipeMaterialResponse{
			RecipeMaterialID: l.ID,
			MaterialID:       l.MaterialID,
			MaterialName:     l.MaterialName,
			Quantity:         l.Quantity,
			Measurement:      l.Measurement,
		})
	}
	return out
}
