package http_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/recipe"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

// recipeStore fake sin aislamiento: el runner ejecuta fn sobre el mismo estado.
// La atomicidad se prueba en el paquete recipe; aquí solo interesa el cable HTTP.
type recipeStore struct {
	recipes  map[int64]*entity.Recipe
	ingLines []entity.RecipeIngredient
	matLines []entity.RecipeMaterial
	nextID   int64
	creates  int
}

func newRecipeStore() *recipeStore {
	return &recipeStore{recipes: map[int64]*entity.Recipe{}, nextID: 1}
}

var (
	ingredientCatalog = map[int64]string{5: "Flour", 6: "Sugar"}
	materialCatalog   = map[int64]string{20: "Box"}
)

func (s *recipeStore) RunRecipe(_ context.Context, fn func(repository.RecipeRepository) error) error {
	return fn(s)
}

func (s *recipeStore) List(context.Context) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0, len(s.recipes))
	for id := int64(1); id < s.nextID; id++ {
		if r, ok := s.recipes[id]; ok {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *recipeStore) GetByID(_ context.Context, id int64) (*entity.Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *recipeStore) ListIngredientLines(_ context.Context, ids []int64) ([]entity.RecipeIngredient, error) {
	var out []entity.RecipeIngredient
	for _, l := range s.ingLines {
		for _, id := range ids {
			if l.RecipeID == id {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func (s *recipeStore) ListMaterialLines(_ context.Context, ids []int64) ([]entity.RecipeMaterial, error) {
	var out []entity.RecipeMaterial
	for _, l := range s.matLines {
		for _, id := range ids {
			if l.RecipeID == id {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func (s *recipeStore) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for id, r := range s.recipes {
		if id != excludeID && strings.EqualFold(r.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *recipeStore) Create(_ context.Context, r *entity.Recipe) error {
	s.creates++
	r.ID = s.nextID
	s.nextID++
	s.recipes[r.ID] = &entity.Recipe{ID: r.ID, ProductID: r.ProductID, Name: r.Name}
	return nil
}

func (s *recipeStore) Update(_ context.Context, r *entity.Recipe) error {
	if _, ok := s.recipes[r.ID]; !ok {
		return domain.ErrNotFound
	}
	s.recipes[r.ID] = &entity.Recipe{ID: r.ID, ProductID: r.ProductID, Name: r.Name}
	return nil
}

func (s *recipeStore) Delete(_ context.Context, id int64) error {
	delete(s.recipes, id)
	return nil
}

func (s *recipeStore) AddIngredientLines(_ context.Context, recipeID int64, lines []entity.RecipeIngredient) error {
	for _, l := range lines {
		name, ok := ingredientCatalog[l.IngredientID]
		if !ok {
			return domain.ErrInvalidReference
		}
		l.ID = int64(len(s.ingLines) + 1)
		l.RecipeID = recipeID
		l.IngredientName = name
		s.ingLines = append(s.ingLines, l)
	}
	return nil
}

func (s *recipeStore) AddMaterialLines(_ context.Context, recipeID int64, lines []entity.RecipeMaterial) error {
	for _, l := range lines {
		name, ok := materialCatalog[l.MaterialID]
		if !ok {
			return domain.ErrInvalidReference
		}
		l.ID = int64(len(s.matLines) + 1)
		l.RecipeID = recipeID
		l.MaterialName = name
		s.matLines = append(s.matLines, l)
	}
	return nil
}

func (s *recipeStore) DeleteIngredientLines(_ context.Context, recipeID int64) error {
	kept := s.ingLines[:0]
	for _, l := range s.ingLines {
		if l.RecipeID != recipeID {
			kept = append(kept, l)
		}
	}
	s.ingLines = kept
	return nil
}

func (s *recipeStore) DeleteMaterialLines(_ context.Context, recipeID int64) error {
	kept := s.matLines[:0]
	for _, l := range s.matLines {
		if l.RecipeID != recipeID {
			kept = append(kept, l)
		}
	}
	s.matLines = kept
	return nil
}

func newRecipeApp() (*fiber.App, *recipeStore, *tokenLookup) {
	store := newRecipeStore()
	v, lookup := newValidator()
	uc := recipe.NewUseCase(store, store)
	app := newTestApp()
	apphttp.RecipeRoutes(app, v, apphttp.NewRecipeHandler(uc, recipe.NewSheetUseCase(uc, pdf.NewMarotoPDFGenerator())))
	return app, store, lookup
}

const cakeBody = `{"ProductID":1,"RecipeName":"Chocolate Cake",
	"Ingredients":[{"IngredientID":5,"Amount":"1.5","Measurement":"kg"},{"IngredientID":6,"Amount":200,"Measurement":"g"}],
	"Materials":[{"MaterialID":20,"Quantity":1,"Measurement":"box"}]}`

func TestRecipes_CrearObtenerReemplazarBorrar(t *testing.T) {
	app, store, _ := newRecipeApp()

	resp := doJSON(t, app, http.MethodPost, "/recipes", "staff-token", cakeBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.RecipeCreatedResponse](t, resp)
	assert.Equal(t, int64(1), created.RecipeID)

	resp = doJSON(t, app, http.MethodGet, "/recipes/1", "staff-token", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.RecipeResponse](t, resp)
	assert.Equal(t, "Chocolate Cake", got.RecipeName)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "Flour", got.Ingredients[0].IngredientName, "el nombre viene del catálogo de ingredientes")
	assert.Equal(t, "1.5", got.Ingredients[0].Amount.String())
	assert.Equal(t, "Sugar", got.Ingredients[1].IngredientName)
	require.Len(t, got.Materials, 1)
	assert.Equal(t, "Box", got.Materials[0].MaterialName)

	// El reemplazo sin materiales elimina la línea anterior.
	resp = doJSON(t, app, http.MethodPut, "/recipes/1", "manager-token",
		`{"ProductID":1,"RecipeName":"Chocolate Cake","Ingredients":[{"IngredientID":6,"Amount":300,"Measurement":"g"}],"Materials":[]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Recipe updated successfully", decode[dto.MessageResponse](t, resp).Message)

	resp = doJSON(t, app, http.MethodGet, "/recipes", "staff-token", "")
	list := decode[[]dto.RecipeResponse](t, resp)
	require.Len(t, list, 1)
	require.Len(t, list[0].Ingredients, 1)
	assert.Equal(t, "300", list[0].Ingredients[0].Amount.String())
	assert.Empty(t, list[0].Materials)

	resp = doJSON(t, app, http.MethodDelete, "/recipes/1", "staff-token", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, store.recipes)
	assert.Empty(t, store.ingLines)

	resp = doJSON(t, app, http.MethodGet, "/recipes/1", "staff-token", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipes_ReemplazarInexistente_404(t *testing.T) {
	app, _, _ := newRecipeApp()

	resp := doJSON(t, app, http.MethodPut, "/recipes/99", "staff-token", cakeBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipes_ReferenciaInexistente_400(t *testing.T) {
	app, _, _ := newRecipeApp()

	resp := doJSON(t, app, http.MethodPost, "/recipes", "staff-token",
		`{"ProductID":1,"RecipeName":"Ghost","Ingredients":[{"IngredientID":404,"Amount":1,"Measurement":"kg"}]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REFERENCE", decode[errorBody](t, resp).Code)
}

func TestRecipes_Validacion_NoTocaElStore(t *testing.T) {
	app, store, _ := newRecipeApp()

	resp := doJSON(t, app, http.MethodPost, "/recipes", "staff-token", `{"ProductID":1,"RecipeName":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/recipes", "staff-token", `{"ProductID":1,"RecipeName":"X","Ingredients":[{"IngredientID":0,"Measurement":"kg"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/recipes", "staff-token", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, store.creates)
}

func TestRecipes_FichaPDF(t *testing.T) {
	app, _, _ := newRecipeApp()

	resp := doJSON(t, app, http.MethodPost, "/recipes", "staff-token", cakeBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/recipes/1/pdf", "staff-token", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="chocolate-cake-1.pdf"`, resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))

	resp = doJSON(t, app, http.MethodGet, "/recipes/42/pdf", "staff-token", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipes_SinTokenNoTocaElStore(t *testing.T) {
	app, store, lookup := newRecipeApp()

	resp := doJSON(t, app, http.MethodPost, "/recipes", "", cakeBody)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/recipes", "forged", cakeBody)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, store.creates)
	assert.Equal(t, 1, lookup.calls, "sin cabecera no se consulta al servicio de auth")
}
