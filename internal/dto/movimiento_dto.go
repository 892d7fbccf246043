package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarMovimientoRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=ingreso egreso"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
}

type ActualizarMovimientoRequest struct {
	Tipo        *string          `json:"tipo"        validate:"omitempty,oneof=ingreso egreso"`
	Monto       *decimal.Decimal `json:"monto"       validate:"omitempty,gt=0"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,min=3"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimientoFilter struct {
	Tipo string `form:"tipo" validate:"omitempty,oneof=ingreso egreso"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID          int64           `json:"id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Fecha       time.Time       `json:"fecha"`
}

// ResumenMovimientosResponse aggregates the financial movements.
type ResumenMovimientosResponse struct {
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	Balance       decimal.Decimal `json:"balance"`
}

// EliminacionPendienteResponse acknowledges a two-phase delete request.
type EliminacionPendienteResponse struct {
	Movimiento MovimientoResponse `json:"movimiento"`
	Detalle    string             `json:"detalle"`
}
