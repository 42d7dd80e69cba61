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

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Las escrituras deben recibir una tx (ver TxRunner.RunRecipe).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

func (r *RecipeRepo) List(ctx context.Context) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(ctx, `SELECT id, product_id, name FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Name); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// GetByID devuelve nil, nil si la receta no existe.
func (r *RecipeRepo) GetByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := r.q.QueryRow(ctx, `SELECT id, product_id, name FROM recipes WHERE id = $1`, id).
		Scan(&rec.ID, &rec.ProductID, &rec.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// ListIngredientLines nombre y unidad salen de ingredients; el orden es el de inserción.
func (r *RecipeRepo) ListIngredientLines(ctx context.Context, recipeIDs []int64) ([]entity.RecipeIngredient, error) {
	query := `
		SELECT ri.id, ri.recipe_id, ri.ingredient_id, i.name, ri.amount, i.measurement
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY ri.recipe_id, ri.id`
	rows, err := r.q.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	var lines []entity.RecipeIngredient
	for rows.Next() {
		var l entity.RecipeIngredient
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.IngredientID, &l.IngredientName, &l.Amount, &l.Measurement); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ListMaterialLines nombre y unidad salen de materials; el orden es el de inserción.
func (r *RecipeRepo) ListMaterialLines(ctx context.Context, recipeIDs []int64) ([]entity.RecipeMaterial, error) {
	query := `
		SELECT rm.id, rm.recipe_id, rm.material_id, m.name, rm.quantity, m.measurement
		FROM recipe_materials rm
		JOIN materials m ON m.id = rm.material_id
		WHERE rm.recipe_id = ANY($1)
		ORDER BY rm.recipe_id, rm.id`
	rows, err := r.q.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe materials: %w", err)
	}
	defer rows.Close()
	var lines []entity.RecipeMaterial
	for rows.Next() {
		var l entity.RecipeMaterial
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.MaterialID, &l.MaterialName, &l.Quantity, &l.Measurement); err != nil {
			return nil, fmt.Errorf("scan recipe material: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *RecipeRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return existsByName(ctx, r.q, "recipes", name, excludeID)
}

func (r *RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	err := r.q.QueryRow(ctx, `INSERT INTO recipes (product_id, name) VALUES ($1, $2) RETURNING id`,
		rec.ProductID, rec.Name).Scan(&rec.ID)
	if err != nil {
		return wrapWriteErr("insert recipe", err)
	}
	return nil
}

// Update devuelve domain.ErrNotFound si la receta no existe.
func (r *RecipeRepo) Update(ctx context.Context, rec *entity.Recipe) error {
	cmd, err := r.q.Exec(ctx, `UPDATE recipes SET product_id = $2, name = $3 WHERE id = $1`, rec.ID, rec.ProductID, rec.Name)
	if err != nil {
		return wrapWriteErr("update recipe", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RecipeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
		return wrapWriteErr("delete recipe", err)
	}
	return nil
}

// AddIngredientLines inserta las líneas en un batch, en el orden recibido.
func (r *RecipeRepo) AddIngredientLines(ctx context.Context, recipeID int64, lines []entity.RecipeIngredient) error {
	const query = `INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount, measurement) VALUES ($1, $2, $3, $4)`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query, recipeID, l.IngredientID, l.Amount, l.Measurement)
	}
	return r.sendBatch(ctx, batch, "insert recipe ingredient")
}

// AddMaterialLines inserta las líneas en un batch, en el orden recibido.
func (r *RecipeRepo) AddMaterialLines(ctx context.Context, recipeID int64, lines []entity.RecipeMaterial) error {
	const query = `INSERT INTO recipe_materials (recipe_id, material_id, quantity, measurement) VALUES ($1, $2, $3, $4)`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query, recipeID, l.MaterialID, l.Quantity, l.Measurement)
	}
	return r.sendBatch(ctx, batch, "insert recipe material")
}

func (r *RecipeRepo) DeleteIngredientLines(ctx context.Context, recipeID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("delete recipe ingredients: %w", err)
	}
	return nil
}

func (r *RecipeRepo) DeleteMaterialLines(ctx context.Context, recipeID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_materials WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("delete recipe materials: %w", err)
	}
	return nil
}

func (r *RecipeRepo) sendBatch(ctx context.Context, batch *pgx.Batch, op string) error {
	if batch.Len() == 0 {
		return nil
	}
	results := r.q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return wrapWriteErr(op, err)
		}
	}
	if err := results.Close(); err != nil {
		return wrapWriteErr(op, err)
	}
	return nil
}
