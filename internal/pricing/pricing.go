// Package pricing implements the promotion discount rule.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrPrecioInvalido is returned for a negative original price.
	ErrPrecioInvalido = errors.New("el precio original no puede ser negativo")
	// ErrDescuentoInvalido is returned when the percentage falls outside [0, 100].
	ErrDescuentoInvalido = errors.New("el porcentaje de descuento debe estar entre 0 y 100")
)

var cien = decimal.NewFromInt(100)

// PrecioConDescuento computes original - original*pct/100 at full precision.
// No rounding is applied; callers format for display. Out-of-range input is
// rejected rather than silently producing negative or inflated prices.
func PrecioConDescuento(original, pct decimal.Decimal) (decimal.Decimal, error) {
	if original.IsNegative() {
		return decimal.Zero, ErrPrecioInvalido
	}
	if pct.IsNegative() || pct.GreaterThan(cien) {
		return decimal.Zero, ErrDescuentoInvalido
	}
	return original.Sub(original.Mul(pct).Div(cien)), nil
}
