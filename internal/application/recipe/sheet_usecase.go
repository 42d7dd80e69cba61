package recipe

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// SheetUseCase genera la ficha PDF de una receta.
type SheetUseCase struct {
	recipes   *UseCase
	generator SheetGenerator
}

// NewSheetUseCase construye el caso de uso.
func NewSheetUseCase(recipes *UseCase, generator SheetGenerator) *SheetUseCase {
	return &SheetUseCase{recipes: recipes, generator: generator}
}

// Download ensambla la receta y devuelve (pdf, nombre de archivo). 404 si la receta no existe.
func (uc *SheetUseCase) Download(ctx context.Context, id int64) ([]byte, string, error) {
	r, err := uc.recipes.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateRecipeSheet(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("recipe sheet: %w", err)
	}
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(r.RecipeName), "-"), "-")
	if slug == "" {
		slug = "recipe"
	}
	return pdf, fmt.Sprintf("%s-%d.pdf", slug, r.RecipeID), nil
}
