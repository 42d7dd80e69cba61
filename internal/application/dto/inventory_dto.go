package dto

import "github.com/shopspring/decimal"

// IngredientRequest entrada para crear o actualizar un ingrediente (mismo cuerpo en ambos casos).
type IngredientRequest struct {
	IngredientName string          `json:"IngredientName" validate:"required,max=100"`
	Amount         decimal.Decimal `json:"Amount"`
	Measurement    string          `json:"Measurement" validate:"required,max=20"`
	BestBeforeDate Date            `json:"BestBeforeDate" validate:"required"`
	ExpirationDate Date            `json:"ExpirationDate" validate:"required"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	IngredientID   int64           `json:"IngredientID"`
	IngredientName string          `json:"IngredientName"`
	Amount         decimal.Decimal `json:"Amount"`
	Measurement    string          `json:"Measurement"`
	BestBeforeDate Date            `json:"BestBeforeDate"`
	ExpirationDate Date            `json:"ExpirationDate"`
	Status         string          `json:"Status"`
}

// MaterialRequest entrada para crear o actualizar un material.
type MaterialRequest struct {
	MaterialName        string          `json:"MaterialName" validate:"required,max=100"`
	MaterialQuantity    decimal.Decimal `json:"MaterialQuantity"`
	MaterialMeasurement string          `json:"MaterialMeasurement" validate:"required,max=20"`
	DateAdded           Date            `json:"DateAdded" validate:"required"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	MaterialID          int64           `json:"MaterialID"`
	MaterialName        string          `json:"MaterialName"`
	MaterialQuantity    decimal.Decimal `json:"MaterialQuantity"`
	MaterialMeasurement string          `json:"MaterialMeasurement"`
	DateAdded           Date            `json:"DateAdded"`
	Status              string          `json:"Status"`
}

// MerchandiseRequest entrada para crear o actualizar mercancía. La cantidad son piezas enteras.
type MerchandiseRequest struct {
	MerchandiseName      string `json:"MerchandiseName" validate:"required,max=100"`
	MerchandiseQuantity  int    `json:"MerchandiseQuantity" validate:"min=0"`
	MerchandiseDateAdded Date   `json:"MerchandiseDateAdded" validate:"required"`
}

// MerchandiseResponse salida de mercancía.
type MerchandiseResponse struct {
	MerchandiseID        int64  `json:"MerchandiseID"`
	MerchandiseName      string `json:"MerchandiseName"`
	MerchandiseQuantity  int    `json:"MerchandiseQuantity"`
	MerchandiseDateAdded Date   `json:"MerchandiseDateAdded"`
	Status               string `json:"Status"`
}
