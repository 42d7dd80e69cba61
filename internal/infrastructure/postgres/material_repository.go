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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, quantity, measurement, date_added, status`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MaterialRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "materials", name, excludeID)
}

func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, quantity, measurement, date_added, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + materialColumns
	saved, err := scanMaterial(r.q.QueryRow(ctx, query, m.Name, m.Quantity, m.Measurement, m.DateAdded, m.Status))
	if err != nil {
		return wrapWriteErr("insert material", err)
	}
	*m = *saved
	return nil
}

func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, quantity = $3, measurement = $4, date_added = $5, status = $6
		WHERE id = $1
		RETURNING ` + materialColumns
	saved, err := scanMaterial(r.q.QueryRow(ctx, query, m.ID, m.Name, m.Quantity, m.Measurement, m.DateAdded, m.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return wrapWriteErr("update material", err)
	}
	*m = *saved
	return nil
}

func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id); err != nil {
		return wrapWriteErr("delete material", err)
	}
	return nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	if err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.Measurement, &m.DateAdded, &m.Status); err != nil {
		return nil, err
	}
	return &m, nil
}
