package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material empaque o utensilio medido en pcs, box o pack.
type Material struct {
	ID          int64
	Name        string
	Quantity    decimal.Decimal
	Measurement string
	DateAdded   time.Time
	Status      string
}
