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

var _ repository.MerchandiseRepository = (*MerchandiseRepo)(nil)

const merchandiseColumns = `id, name, quantity, date_added, status`

// MerchandiseRepo implementación del puerto MerchandiseRepository sobre PostgreSQL.
type MerchandiseRepo struct {
	q Querier
}

// NewMerchandiseRepository construye el adaptador.
func NewMerchandiseRepository(q Querier) *MerchandiseRepo {
	return &MerchandiseRepo{q: q}
}

func (r *MerchandiseRepo) List(ctx context.Context) ([]*entity.Merchandise, error) {
	rows, err := r.q.Query(ctx, `SELECT `+merchandiseColumns+` FROM merchandise ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list merchandise: %w", err)
	}
	defer rows.Close()
	var list []*entity.Merchandise
	for rows.Next() {
		m, err := scanMerchandise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan merchandise: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MerchandiseRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "merchandise", name, excludeID)
}

func (r *MerchandiseRepo) Create(ctx context.Context, m *entity.Merchandise) error {
	query := `
		INSERT INTO merchandise (name, quantity, date_added, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + merchandiseColumns
	saved, err := scanMerchandise(r.q.QueryRow(ctx, query, m.Name, m.Quantity, m.DateAdded, m.Status))
	if err != nil {
		return wrapWriteErr("insert merchandise", err)
	}
	*m = *saved
	return nil
}

func (r *MerchandiseRepo) Update(ctx context.Context, m *entity.Merchandise) error {
	query := `
		UPDATE merchandise SET name = $2, quantity = $3, date_added = $4, status = $5
		WHERE id = $1
		RETURNING ` + merchandiseColumns
	saved, err := scanMerchandise(r.q.QueryRow(ctx, query, m.ID, m.Name, m.Quantity, m.DateAdded, m.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return wrapWriteErr("update merchandise", err)
	}
	*m = *saved
	return nil
}

func (r *MerchandiseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM merchandise WHERE id = $1`, id); err != nil {
		return wrapWriteErr("delete merchandise", err)
	}
	return nil
}

func scanMerchandise(row pgx.Row) (*entity.Merchandise, error) {
	var m entity.Merchandise
	if err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.DateAdded, &m.Status); err != nil {
		return nil, err
	}
	return &m, nil
}
