// Package pdf implementa la ficha de receta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la receta  │  N° receta + Producto        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGREDIENTES: # | Ingrediente | Cantidad | Unidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MATERIALES:   # | Material    | Cantidad | Unidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/recipe"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 60, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 245, Green: 235, Blue: 225}
)

var _ recipe.SheetGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa recipe.SheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// GenerateRecipeSheet genera la ficha y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRecipeSheet(_ context.Context, r *dto.RecipeResponse) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: receta nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recipe "+r.RecipeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("INGREDIENTS"))
	m.AddRows(tableHeaderRow("Ingredient"))
	m.AddRows(ingredientRows(r.Ingredients)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle("MATERIALS"))
	m.AddRows(tableHeaderRow("Material"))
	m.AddRows(materialRows(r.Materials)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *dto.RecipeResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.RecipeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Recipe sheet", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Recipe #"+strconv.FormatInt(r.RecipeID, 10), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Product #"+strconv.FormatInt(r.ProductID, 10), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(itemLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("#", 1, align.Center),
		h(itemLabel, 6, align.Left),
		h("Quantity", 3, align.Right),
		h("Unit", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func ingredientRows(lines []dto.RecipeIngredientResponse) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, detailRow(i+1, l.IngredientName, l.Amount.String(), l.Measurement))
	}
	return rows
}

func materialRows(lines []dto.RecipeMaterialResponse) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, detailRow(i+1, l.MaterialName, l.Quantity.String(), l.Measurement))
	}
	return rows
}

func detailRow(n int, name, qty, unit string) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.Itoa(n), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(6).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(3).Add(text.New(qty, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("(none)", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func footerRow(at time.Time) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Generated "+at.Format("2006-01-02 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 1,
		}),
	))
}
