package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
)

// Movimiento is a single financial transaction, income or expense.
type Movimiento struct {
	ID          int64
	Tipo        string // "ingreso" | "egreso"
	Monto       decimal.Decimal
	Descripcion string
	Fecha       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
