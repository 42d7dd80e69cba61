package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de stock persistidos junto a cada ítem de inventario.
const (
	StatusNotAvailable = "Not Available"
	StatusLowStock     = "Low Stock"
	StatusAvailable    = "Available"
)

// ThresholdPolicy umbral de stock bajo por unidad de medida (servicio de dominio).
// Si la unidad no está en la tabla se usa Default.
type ThresholdPolicy struct {
	Thresholds map[string]decimal.Decimal
	Default    decimal.Decimal
}

// IngredientPolicy umbrales de ingredientes (g, kg, ml, l).
var IngredientPolicy = ThresholdPolicy{
	Thresholds: map[string]decimal.Decimal{
		"g":  decimal.NewFromInt(50),
		"kg": decimal.RequireFromString("0.5"),
		"ml": decimal.NewFromInt(100),
		"l":  decimal.RequireFromString("0.5"),
	},
	Default: decimal.NewFromInt(1),
}

// MaterialPolicy umbrales de materiales (pcs, box, pack).
var MaterialPolicy = ThresholdPolicy{
	Thresholds: map[string]decimal.Decimal{
		"pcs":  decimal.NewFromInt(10),
		"box":  decimal.NewFromInt(5),
		"pack": decimal.NewFromInt(5),
	},
	Default: decimal.NewFromInt(1),
}

// Threshold devuelve el umbral para unit (sin distinguir mayúsculas ni espacios).
func (p ThresholdPolicy) Threshold(unit string) decimal.Decimal {
	if t, ok := p.Thresholds[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return t
	}
	return p.Default
}

// Status: quantity <= 0 -> Not Available; 0 < quantity <= umbral -> Low Stock; resto -> Available.
func (p ThresholdPolicy) Status(quantity decimal.Decimal, unit string) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StatusNotAvailable
	}
	if quantity.LessThanOrEqual(p.Threshold(unit)) {
		return StatusLowStock
	}
	return StatusAvailable
}

// MerchandiseLowStockCutoff la mercancía se cuenta en piezas: por debajo de este valor es stock bajo.
const MerchandiseLowStockCutoff = 10

// MerchandiseStatus regla fija de mercancía: <= 0 Not Available, < 10 Low Stock, resto Available.
func MerchandiseStatus(quantity int) string {
	switch {
	case quantity <= 0:
		return StatusNotAvailable
	case quantity < MerchandiseLowStockCutoff:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}
