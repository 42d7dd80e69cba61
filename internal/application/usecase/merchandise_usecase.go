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

// MerchandiseUseCase CRUD de mercancía (regla de estado de corte fijo).
type MerchandiseUseCase struct {
	repo repository.MerchandiseRepository
}

// NewMerchandiseUseCase construye el caso de uso.
func NewMerchandiseUseCase(repo repository.MerchandiseRepository) *MerchandiseUseCase {
	return &MerchandiseUseCase{repo: repo}
}

func (uc *MerchandiseUseCase) List(ctx context.Context) ([]dto.MerchandiseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MerchandiseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMerchandiseResponse(m))
	}
	return out, nil
}

func (uc *MerchandiseUseCase) Create(ctx context.Context, in dto.MerchandiseRequest) (*dto.MerchandiseResponse, error) {
	m := merchandiseFromRequest(in)
	if err := uc.checkName(ctx, m.Name, 0); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMerchandiseResponse(m)
	return &out, nil
}

func (uc *MerchandiseUseCase) Update(ctx context.Context, id int64, in dto.MerchandiseRequest) (*dto.MerchandiseResponse, error) {
	m := merchandiseFromRequest(in)
	m.ID = id
	if err := uc.checkName(ctx, m.Name, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFound("Merchandise not found")
		}
		return nil, err
	}
	out := toMerchandiseResponse(m)
	return &out, nil
}

func (uc *MerchandiseUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Merchandise deleted successfully"}, nil
}

func (uc *MerchandiseUseCase) checkName(ctx context.Context, name string, excludeID int64) error {
	taken, err := uc.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Duplicate("Merchandise name already exists.")
	}
	return nil
}

func merchandiseFromRequest(in dto.MerchandiseRequest) *entity.Merchandise {
	return &entity.Merchandise{
		Name:      strings.TrimSpace(in.MerchandiseName),
		Quantity:  in.MerchandiseQuantity,
		DateAdded: in.MerchandiseDateAdded.Time,
		Status:    inventory.MerchandiseStatus(in.MerchandiseQuantity),
	}
}

func toMerchandiseResponse(m *entity.Merchandise) dto.MerchandiseResponse {
	return dto.MerchandiseResponse{
		MerchandiseID:        m.ID,
		MerchandiseName:      m.Name,
		MerchandiseQuantity:  m.Quantity,
		MerchandiseDateAdded: dto.NewDate(m.DateAdded),
		Status:               m.Status,
	}
}
