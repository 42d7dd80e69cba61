package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ProductTypeUseCase catálogo de tipos de producto.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

func (uc *ProductTypeUseCase) List(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, dto.ProductTypeResponse{ProductTypeID: pt.ID, ProductTypeName: pt.Name})
	}
	return out, nil
}

func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.ProductTypeRequest) (*dto.MessageResponse, error) {
	pt := &entity.ProductType{Name: strings.TrimSpace(in.ProductTypeName)}
	if err := uc.checkName(ctx, pt.Name, 0); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, pt); err != nil {
		return nil, translateTypeErr(err)
	}
	return &dto.MessageResponse{Message: "Product type created successfully"}, nil
}

// Update chequea el nombre antes que la existencia del id (mismo orden que el servicio original).
func (uc *ProductTypeUseCase) Update(ctx context.Context, id int64, in dto.ProductTypeRequest) (*dto.MessageResponse, error) {
	pt := &entity.ProductType{ID: id, Name: strings.TrimSpace(in.ProductTypeName)}
	if err := uc.checkName(ctx, pt.Name, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, pt); err != nil {
		return nil, translateTypeErr(err)
	}
	return &dto.MessageResponse{Message: "Product type updated successfully"}, nil
}

// Delete devuelve 404 si el tipo no existe.
func (uc *ProductTypeUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, translateTypeErr(err)
	}
	return &dto.MessageResponse{Message: "Product type deleted successfully"}, nil
}

func (uc *ProductTypeUseCase) checkName(ctx context.Context, name string, excludeID int64) error {
	taken, err := uc.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Duplicate("Product type already exists")
	}
	return nil
}

func translateTypeErr(err error) error {
	switch {
	case domain.IsNotFound(err):
		return domain.NotFound("Product type not found")
	case errors.Is(err, domain.ErrDuplicate):
		return domain.Duplicate("Product type already exists")
	case errors.Is(err, domain.ErrInvalidReference):
		return &domain.DomainError{Kind: domain.ErrInvalidReference, Message: "Product type is still used by products"}
	}
	return err
}
