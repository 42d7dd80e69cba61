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

// MaterialUseCase CRUD de materiales.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (uc *MaterialUseCase) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

func (uc *MaterialUseCase) Create(ctx context.Context, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m := materialFromRequest(in)
	if err := uc.checkName(ctx, m.Name, 0); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

func (uc *MaterialUseCase) Update(ctx context.Context, id int64, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m := materialFromRequest(in)
	m.ID = id
	if err := uc.checkName(ctx, m.Name, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFound("Material not found")
		}
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

func (uc *MaterialUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Material deleted successfully"}, nil
}

func (uc *MaterialUseCase) checkName(ctx context.Context, name string, excludeID int64) error {
	taken, err := uc.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Duplicate("Material name already exists.")
	}
	return nil
}

func materialFromRequest(in dto.MaterialRequest) *entity.Material {
	unit := strings.TrimSpace(in.MaterialMeasurement)
	return &entity.Material{
		Name:        strings.TrimSpace(in.MaterialName),
		Quantity:    in.MaterialQuantity,
		Measurement: unit,
		DateAdded:   in.DateAdded.Time,
		Status:      inventory.MaterialPolicy.Status(in.MaterialQuantity, unit),
	}
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		MaterialID:          m.ID,
		MaterialName:        m.Name,
		MaterialQuantity:    m.Quantity,
		MaterialMeasurement: m.Measurement,
		DateAdded:           dto.NewDate(m.DateAdded),
		Status:              m.Status,
	}
}
