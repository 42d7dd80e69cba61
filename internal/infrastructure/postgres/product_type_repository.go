package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository construye el adaptador.
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

func (r *ProductTypeRepo) List(ctx context.Context) ([]*entity.ProductType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM product_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		var pt entity.ProductType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, &pt)
	}
	return list, rows.Err()
}

func (r *ProductTypeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_types WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check product type: %w", err)
	}
	return ok, nil
}

func (r *ProductTypeRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "product_types", name, excludeID)
}

func (r *ProductTypeRepo) Create(ctx context.Context, pt *entity.ProductType) error {
	if err := r.q.QueryRow(ctx, `INSERT INTO product_types (name) VALUES ($1) RETURNING id`, pt.Name).Scan(&pt.ID); err != nil {
		return wrapWriteErr("insert product type", err)
	}
	return nil
}

// Update devuelve domain.ErrNotFound si el id no existe.
func (r *ProductTypeRepo) Update(ctx context.Context, pt *entity.ProductType) error {
	cmd, err := r.q.Exec(ctx, `UPDATE product_types SET name = $2 WHERE id = $1`, pt.ID, pt.Name)
	if err != nil {
		return wrapWriteErr("update product type", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete devuelve domain.ErrNotFound si el id no existe (a diferencia del resto de catálogos).
func (r *ProductTypeRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_types WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("delete product type", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
