package entity

import "github.com/shopspring/decimal"

// Recipe entidad compuesta: la receta y sus líneas de ingredientes y materiales se manipulan como unidad.
// Las líneas solo existen mientras exista la receta.
type Recipe struct {
	ID          int64
	ProductID   int64
	Name        string
	Ingredients []RecipeIngredient
	Materials   []RecipeMaterial
}

// RecipeIngredient línea de ingrediente. IngredientName y la unidad de lectura vienen de la tabla ingredients.
type RecipeIngredient struct {
	ID             int64
	RecipeID       int64
	IngredientID   int64
	IngredientName string
	Amount         decimal.Decimal
	Measurement    string
}

// RecipeMaterial línea de material. MaterialName y la unidad de lectura vienen de la tabla materials.
type RecipeMaterial struct {
	ID           int64
	RecipeID     int64
	MaterialID   int64
	MaterialName string
	Quantity     decimal.Decimal
	Measurement  string
}
