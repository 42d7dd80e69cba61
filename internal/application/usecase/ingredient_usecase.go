package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// IngredientUseCase CRUD de ingredientes. El estado se recalcula en cada escritura.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// List devuelve todos los ingredientes.
func (uc *IngredientUseCase) List(ctx context.Context) ([]dto.IngredientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, toIngredientResponse(ing))
	}
	return out, nil
}

// Create rechaza nombres repetidos (sin distinguir mayúsculas).
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	ing := ingredientFromRequest(in)
	if err := uc.checkName(ctx, ing.Name, 0); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	out := toIngredientResponse(ing)
	return &out, nil
}

// Update reemplaza todos los campos; 404 si el id no existe.
func (uc *IngredientUseCase) Update(ctx context.Context, id int64, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	ing := ingredientFromRequest(in)
	ing.ID = id
	if err := uc.checkName(ctx, ing.Name, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, ing); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFound("Ingredient not found")
		}
		return nil, err
	}
	out := toIngredientResponse(ing)
	return &out, nil
}

// Delete borra sin comprobar existencia previa.
func (uc *IngredientUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Ingredient deleted successfully"}, nil
}

func (uc *IngredientUseCase) checkName(ctx context.Context, name string, excludeID int64) error {
	taken, err := uc.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Duplicate("Ingredient name already exists.")
	}
	return nil
}

func ingredientFromRequest(in dto.IngredientRequest) *entity.Ingredient {
	unit := strings.TrimSpace(in.Measurement)
	return &entity.Ingredient{
		Name:           strings.TrimSpace(in.IngredientName),
		Amount:         in.Amount,
		Measurement:    unit,
		BestBeforeDate: in.BestBeforeDate.Time,
		ExpirationDate: in.ExpirationDate.Time,
		Status:         inventory.IngredientPolicy.Status(in.Amount, unit),
	}
}

func toIngredientResponse(ing *entity.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		Amount:         ing.Amount,
		Measurement:    ing.Measurement,
		BestBeforeDate: dto.NewDate(ing.BestBeforeDate),
		ExpirationDate: dto.NewDate(ing.ExpirationDate),
		Status:         ing.Status,
	}
}
