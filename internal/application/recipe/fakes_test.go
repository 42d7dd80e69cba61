package recipe_test

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

type catalogItem struct {
	name string
	unit string
}

// recipeState copia completa de las tablas; la transacción trabaja sobre un clon.
type recipeState struct {
	nextRecipe, nextLine int64
	recipes              []entity.Recipe
	ingLines             []entity.RecipeIngredient
	matLines             []entity.RecipeMaterial
}

func (s recipeState) clone() recipeState {
	c := s
	c.recipes = append([]entity.Recipe(nil), s.recipes...)
	c.ingLines = append([]entity.RecipeIngredient(nil), s.ingLines...)
	c.matLines = append([]entity.RecipeMaterial(nil), s.matLines...)
	return c
}

// memRecipeStore fake transaccional: si el callback falla se descarta todo lo escrito.
type memRecipeStore struct {
	mu          sync.Mutex
	state       recipeState
	products    map[int64]bool
	ingredients map[int64]catalogItem
	materials   map[int64]catalogItem
	// failMaterialInsert simula un fallo a mitad de la secuencia.
	failMaterialInsert error
	listQueries        int
}

func newMemRecipeStore() *memRecipeStore {
	return &memRecipeStore{
		products:    map[int64]bool{1: true, 2: true},
		ingredients: map[int64]catalogItem{5: {"Flour", "kg"}, 6: {"Sugar", "g"}, 7: {"Milk", "l"}, 8: {"Eggs", "pcs"}},
		materials:   map[int64]catalogItem{20: {"Box", "box"}, 21: {"Ribbon", "pcs"}},
	}
}

func (s *memRecipeStore) RunRecipe(ctx context.Context, fn func(repository.RecipeRepository) error) error {
	s.mu.Lock()
	work := s.state.clone()
	s.mu.Unlock()

	if err := fn(&memRecipeRepo{store: s, st: &work}); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = work
	s.mu.Unlock()
	return nil
}

// reader repo de lectura sobre el estado confirmado.
func (s *memRecipeStore) reader() *memRecipeRepo {
	return &memRecipeRepo{store: s, committed: true}
}

func (s *memRecipeStore) ingredientLineCount(recipeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.state.ingLines {
		if l.RecipeID == recipeID {
			n++
		}
	}
	return n
}

func (s *memRecipeStore) materialLineCount(recipeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.state.matLines {
		if l.RecipeID == recipeID {
			n++
		}
	}
	return n
}

func (s *memRecipeStore) recipeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.recipes)
}

type memRecipeRepo struct {
	store     *memRecipeStore
	st        *recipeState
	committed bool
}

func (r *memRecipeRepo) view() *recipeState {
	if r.committed {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		c := r.store.state.clone()
		return &c
	}
	return r.st
}

func (r *memRecipeRepo) List(context.Context) ([]*entity.Recipe, error) {
	r.store.listQueries++
	var out []*entity.Recipe
	for _, rec := range r.view().recipes {
		rec := rec
		out = append(out, &rec)
	}
	return out, nil
}

func (r *memRecipeRepo) GetByID(_ context.Context, id int64) (*entity.Recipe, error) {
	for _, rec := range r.view().recipes {
		if rec.ID == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

func contains(ids []int64, id int64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func (r *memRecipeRepo) ListIngredientLines(_ context.Context, ids []int64) ([]entity.RecipeIngredient, error) {
	r.store.listQueries++
	var out []entity.RecipeIngredient
	for _, l := range r.view().ingLines {
		if contains(ids, l.RecipeID) {
			item := r.store.ingredients[l.IngredientID]
			l.IngredientName, l.Measurement = item.name, item.unit
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memRecipeRepo) ListMaterialLines(_ context.Context, ids []int64) ([]entity.RecipeMaterial, error) {
	r.store.listQueries++
	var out []entity.RecipeMaterial
	for _, l := range r.view().matLines {
		if contains(ids, l.RecipeID) {
			item := r.store.materials[l.MaterialID]
			l.MaterialName, l.Measurement = item.name, item.unit
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memRecipeRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, rec := range r.view().recipes {
		if rec.ID != excludeID && strings.EqualFold(rec.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRecipeRepo) Create(_ context.Context, rec *entity.Recipe) error {
	if !r.store.products[rec.ProductID] {
		return domain.ErrInvalidReference
	}
	r.st.nextRecipe++
	rec.ID = r.st.nextRecipe
	r.st.recipes = append(r.st.recipes, entity.Recipe{ID: rec.ID, ProductID: rec.ProductID, Name: rec.Name})
	return nil
}

func (r *memRecipeRepo) Update(_ context.Context, rec *entity.Recipe) error {
	for i := range r.st.recipes {
		if r.st.recipes[i].ID == rec.ID {
			if !r.store.products[rec.ProductID] {
				return domain.ErrInvalidReference
			}
			r.st.recipes[i].ProductID = rec.ProductID
			r.st.recipes[i].Name = rec.Name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRecipeRepo) Delete(_ context.Context, id int64) error {
	kept := r.st.recipes[:0]
	for _, rec := range r.st.recipes {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	r.st.recipes = kept
	return nil
}

func (r *memRecipeRepo) AddIngredientLines(_ context.Context, recipeID int64, lines []entity.RecipeIngredient) error {
	for _, l := range lines {
		if _, ok := r.store.ingredients[l.IngredientID]; !ok {
			return domain.ErrInvalidReference
		}
		r.st.nextLine++
		r.st.ingLines = append(r.st.ingLines, entity.RecipeIngredient{
			ID: r.st.nextLine, RecipeID: recipeID, IngredientID: l.IngredientID, Amount: l.Amount, Measurement: l.Measurement,
		})
	}
	return nil
}

func (r *memRecipeRepo) AddMaterialLines(_ context.Context, recipeID int64, lines []entity.RecipeMaterial) error {
	if r.store.failMaterialInsert != nil {
		return r.store.failMaterialInsert
	}
	for _, l := range lines {
		if _, ok := r.store.materials[l.MaterialID]; !ok {
			return domain.ErrInvalidReference
		}
		r.st.nextLine++
		r.st.matLines = append(r.st.matLines, entity.RecipeMaterial{
			ID: r.st.nextLine, RecipeID: recipeID, MaterialID: l.MaterialID, Quantity: l.Quantity, Measurement: l.Measurement,
		})
	}
	return nil
}

func (r *memRecipeRepo) DeleteIngredientLines(_ context.Context, recipeID int64) error {
	kept := r.st.ingLines[:0]
	for _, l := range r.st.ingLines {
		if l.RecipeID != recipeID {
			kept = append(kept, l)
		}
	}
	r.st.ingLines = kept
	return nil
}

func (r *memRecipeRepo) DeleteMaterialLines(_ context.Context, recipeID int64) error {
	kept := r.st.matLines[:0]
	for _, l := range r.st.matLines {
		if l.RecipeID != recipeID {
			kept = append(kept, l)
		}
	}
	r.st.matLines = kept
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
