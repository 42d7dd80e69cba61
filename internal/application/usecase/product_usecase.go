package usecase

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

var (
	errUnknownProductType = &domain.DomainError{Kind: domain.ErrInvalidReference, Message: "Product type not found"}
	errProductNotFound    = domain.NotFound("Product not found")
)

// ProductUseCase CRUD de productos. La imagen se guarda por nombre de archivo original
// y solo después del chequeo de nombre duplicado.
type ProductUseCase struct {
	repo    repository.ProductRepository
	types   repository.ProductTypeRepository
	storage ports.FileStorage
	log     *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, types repository.ProductTypeRepository, storage ports.FileStorage, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, types: types, storage: storage, log: log}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create crea un producto; la imagen es obligatoria.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest, image *ports.Upload) (*dto.ProductResponse, error) {
	if image == nil {
		return nil, domain.Invalid("ProductImage is required")
	}
	product := productFromRequest(in)
	if err := uc.precheck(ctx, product, 0); err != nil {
		return nil, err
	}
	err := uc.putImage(ctx, image, func(name string) error {
		product.Image = name
		return uc.repo.Create(ctx, product)
	})
	if err != nil {
		return nil, uc.translate(err)
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update reemplaza los campos del producto. Sin imagen nueva se conserva la anterior; con imagen
// nueva la anterior se borra si ningún otro producto la usa.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest, image *ports.Upload) (*dto.ProductResponse, error) {
	product := productFromRequest(in)
	product.ID = id
	if err := uc.precheck(ctx, product, id); err != nil {
		return nil, err
	}
	if image == nil {
		if err := uc.repo.Update(ctx, product, false); err != nil {
			return nil, uc.translateUpdate(err)
		}
		out := toProductResponse(product)
		return &out, nil
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errProductNotFound
	}
	err = uc.putImage(ctx, image, func(name string) error {
		product.Image = name
		return uc.repo.Update(ctx, product, true)
	})
	if err != nil {
		return nil, uc.translateUpdate(err)
	}
	if current.Image != "" && current.Image != product.Image {
		uc.release(ctx, current.Image, id)
	}
	out := toProductResponse(product)
	return &out, nil
}

// Delete borra sin comprobar existencia previa.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Product deleted successfully"}, nil
}

func (uc *ProductUseCase) precheck(ctx context.Context, p *entity.Product, excludeID int64) error {
	taken, err := uc.repo.ExistsByName(ctx, p.Name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Duplicate("Product name already exists.")
	}
	ok, err := uc.types.Exists(ctx, p.TypeID)
	if err != nil {
		return err
	}
	if !ok {
		return errUnknownProductType
	}
	return nil
}

// translate da mensaje propio a la violación de FK (el tipo se borró entre el chequeo y el insert).
func (uc *ProductUseCase) translate(err error) error {
	if errors.Is(err, domain.ErrInvalidReference) {
		return errUnknownProductType
	}
	return err
}

func (uc *ProductUseCase) translateUpdate(err error) error {
	if domain.IsNotFound(err) {
		return errProductNotFound
	}
	return uc.translate(err)
}

// putImage guarda la imagen alrededor de write. Varios productos pueden compartir un mismo nombre
// de archivo: si no existía se escribe antes y se borra si write falla; si ya existía solo se
// sobrescribe después de que write tenga éxito, así un fallo nunca toca el archivo de otro producto.
func (uc *ProductUseCase) putImage(ctx context.Context, image *ports.Upload, write func(name string) error) error {
	name := imageName(image.Filename)
	existed, err := uc.storage.Exists(ctx, name)
	if err != nil {
		return err
	}
	if existed {
		if err := write(name); err != nil {
			return err
		}
		_, err := uc.storage.Save(ctx, name, image.Content)
		return err
	}
	stored, err := uc.storage.Save(ctx, name, image.Content)
	if err != nil {
		return err
	}
	if err := write(stored); err != nil {
		uc.discard(ctx, stored)
		return err
	}
	return nil
}

// release borra una imagen reemplazada salvo que otro producto la siga referenciando.
func (uc *ProductUseCase) release(ctx context.Context, name string, ownerID int64) {
	used, err := uc.repo.ImageInUse(ctx, name, ownerID)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", name).Msg("no se pudo comprobar el uso de la imagen")
		return
	}
	if !used {
		uc.discard(ctx, name)
	}
}

func (uc *ProductUseCase) discard(ctx context.Context, name string) {
	if err := uc.storage.Remove(ctx, name); err != nil {
		uc.log.Warn().Err(err).Str("file", name).Msg("no se pudo borrar la imagen")
	}
}

func imageName(filename string) string {
	return path.Base(strings.ReplaceAll(filename, `\`, "/"))
}

func productFromRequest(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		Name:        strings.TrimSpace(in.ProductName),
		TypeID:      in.ProductTypeID,
		Category:    in.ProductCategory,
		Description: in.ProductDescription,
		Price:       in.ProductPrice,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:          p.ID,
		ProductName:        p.Name,
		ProductTypeID:      p.TypeID,
		ProductCategory:    p.Category,
		ProductDescription: p.Description,
		ProductPrice:       p.Price,
		ProductImage:       p.Image,
	}
}
