package entity

import "github.com/shopspring/decimal"

// Product representa un producto de venta. Image guarda solo el nombre del archivo subido.
type Product struct {
	ID          int64
	Name        string
	TypeID      int64
	Category    string
	Description string
	Price       decimal.Decimal
	Image       string
}
