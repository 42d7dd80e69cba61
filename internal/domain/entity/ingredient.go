package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient insumo medido en g, kg, ml o l. Status se calcula al escribir y se persiste.
type Ingredient struct {
	ID             int64
	Name           string
	Amount         decimal.Decimal
	Measurement    string
	BestBeforeDate time.Time
	ExpirationDate time.Time
	Status         string
}
