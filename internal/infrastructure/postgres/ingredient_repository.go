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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, amount, measurement, best_before_date, expiration_date, status`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

func (r *IngredientRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "ingredients", name, excludeID)
}

func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, amount, measurement, best_before_date, expiration_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + ingredientColumns
	saved, err := scanIngredient(r.q.QueryRow(ctx, query,
		ing.Name, ing.Amount, ing.Measurement, ing.BestBeforeDate, ing.ExpirationDate, ing.Status))
	if err != nil {
		return wrapWriteErr("insert ingredient", err)
	}
	*ing = *saved
	return nil
}

// Update escribe cantidad y estado en la misma sentencia.
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, amount = $3, measurement = $4, best_before_date = $5, expiration_date = $6, status = $7
		WHERE id = $1
		RETURNING ` + ingredientColumns
	saved, err := scanIngredient(r.q.QueryRow(ctx, query,
		ing.ID, ing.Name, ing.Amount, ing.Measurement, ing.BestBeforeDate, ing.ExpirationDate, ing.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return wrapWriteErr("update ingredient", err)
	}
	*ing = *saved
	return nil
}

func (r *IngredientRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id); err != nil {
		return wrapWriteErr("delete ingredient", err)
	}
	return nil
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := row.Scan(&ing.ID, &ing.Name, &ing.Amount, &ing.Measurement, &ing.BestBeforeDate, &ing.ExpirationDate, &ing.Status); err != nil {
		return nil, err
	}
	return &ing, nil
}
