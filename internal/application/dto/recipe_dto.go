package dto

import "github.com/shopspring/decimal"

// RecipeIngredientInput línea de ingrediente enviada por el cliente.
type RecipeIngredientInput struct {
	IngredientID int64           `json:"IngredientID" validate:"required,gt=0"`
	Amount       decimal.Decimal `json:"Amount"`
	Measurement  string          `json:"Measurement" validate:"required,max=20"`
}

// RecipeMaterialInput línea de material enviada por el cliente.
type RecipeMaterialInput struct {
	MaterialID  int64           `json:"MaterialID" validate:"required,gt=0"`
	Quantity    decimal.Decimal `json:"Quantity"`
	Measurement string          `json:"Measurement" validate:"required,max=20"`
}

// RecipeRequest cuerpo de create y update. En update las listas reemplazan por completo a las anteriores.
type RecipeRequest struct {
	ProductID   int64                   `json:"ProductID" validate:"required,gt=0"`
	RecipeName  string                  `json:"RecipeName" validate:"required,max=100"`
	Ingredients []RecipeIngredientInput `json:"Ingredients" validate:"dive"`
	Materials   []RecipeMaterialInput   `json:"Materials" validate:"dive"`
}

// RecipeIngredientResponse línea de ingrediente con nombre y unidad de la tabla ingredients.
type RecipeIngredientResponse struct {
	RecipeIngredientID int64           `json:"RecipeIngredientID"`
	IngredientID       int64           `json:"IngredientID"`
	IngredientName     string          `json:"IngredientName"`
	Amount             decimal.Decimal `json:"Amount"`
	Measurement        string          `json:"Measurement"`
}

// RecipeMaterialResponse línea de material con nombre y unidad de la tabla materials.
type RecipeMaterialResponse struct {
	RecipeMaterialID int64           `json:"RecipeMaterialID"`
	MaterialID       int64           `json:"MaterialID"`
	MaterialName     string          `json:"MaterialName"`
	Quantity         decimal.Decimal `json:"Quantity"`
	Measurement      string          `json:"Measurement"`
}

// RecipeResponse receta con sus líneas anidadas.
type RecipeResponse struct {
	RecipeID    int64                      `json:"RecipeID"`
	ProductID   int64                      `json:"ProductID"`
	RecipeName  string                     `json:"RecipeName"`
	Ingredients []RecipeIngredientResponse `json:"Ingredients"`
	Materials   []RecipeMaterialResponse   `json:"Materials"`
}

// RecipeCreatedResponse salida de create.
type RecipeCreatedResponse struct {
	Message  string `json:"message"`
	RecipeID int64  `json:"RecipeID"`
}
