package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, product_type_id, category, description, price, image`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) ImageInUse(ctx context.Context, image string, excludeID int64) (bool, error) {
	var used bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE image = $1 AND id <> $2)`, image, excludeID).Scan(&used)
	if err != nil {
		return false, fmt.Errorf("product image in use: %w", err)
	}
	return used, nil
}

func (r *ProductRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "products", name, excludeID)
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, product_type_id, category, description, price, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns
	saved, err := scanProduct(r.q.QueryRow(ctx, query, p.Name, p.TypeID, p.Category, p.Description, p.Price, p.Image))
	if err != nil {
		return wrapWriteErr("insert product", err)
	}
	*p = *saved
	return nil
}

// Update con withImage=false deja la imagen guardada intacta y la devuelve en p.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product, withImage bool) error {
	query := `
		UPDATE products SET name = $2, product_type_id = $3, category = $4, description = $5, price = $6,
			image = CASE WHEN $7 THEN $8 ELSE image END
		WHERE id = $1
		RETURNING ` + productColumns
	saved, err := scanProduct(r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.TypeID, p.Category, p.Description, p.Price, withImage, p.Image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return wrapWriteErr("update product", err)
	}
	*p = *saved
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return wrapWriteErr("delete product", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.TypeID, &p.Category, &p.Description, &p.Price, &p.Image); err != nil {
		return nil, err
	}
	return &p, nil
}
