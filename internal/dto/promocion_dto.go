package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPromocionRequest struct {
	Titulo            string          `json:"titulo"          validate:"required,min=2,max=150"`
	PresentacionID    int64           `json:"presentacion_id" validate:"required"`
	DescuentoPct      decimal.Decimal `json:"descuento_pct"   validate:"min=0,max=100"`
	DosPorUnoToppings bool            `json:"dos_por_uno_toppings"`
	DosPorUnoSalsas   bool            `json:"dos_por_uno_salsas"`
	Activo            *bool           `json:"activo"`
	FechaInicio       *time.Time      `json:"fecha_inicio"`
	FechaFin          *time.Time      `json:"fecha_fin"`
}

type ActualizarPromocionRequest struct {
	Titulo            *string          `json:"titulo"          validate:"omitempty,min=2,max=150"`
	PresentacionID    *int64           `json:"presentacion_id"`
	DescuentoPct      *decimal.Decimal `json:"descuento_pct"   validate:"omitempty,min=0,max=100"`
	DosPorUnoToppings *bool            `json:"dos_por_uno_toppings"`
	DosPorUnoSalsas   *bool            `json:"dos_por_uno_salsas"`
	Activo            *bool            `json:"activo"`
	FechaInicio       *time.Time       `json:"fecha_inicio"`
	FechaFin          *time.Time       `json:"fecha_fin"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// PromocionFilter narrows listings by state: todos | activo | inactivo.
type PromocionFilter struct {
	Estado string `form:"estado,default=todos" validate:"omitempty,oneof=todos activo inactivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PromocionResponse struct {
	ID                 int64           `json:"id"`
	Titulo             string          `json:"titulo"`
	PresentacionID     int64           `json:"presentacion_id"`
	Presentacion       string          `json:"presentacion"`
	DescuentoPct       decimal.Decimal `json:"descuento_pct"`
	PrecioOriginal     decimal.Decimal `json:"precio_original"`
	PrecioConDescuento decimal.Decimal `json:"precio_con_descuento"`
	DosPorUnoToppings  bool            `json:"dos_por_uno_toppings"`
	DosPorUnoSalsas    bool            `json:"dos_por_uno_salsas"`
	Activo             bool            `json:"activo"`
	FechaInicio        time.Time       `json:"fecha_inicio"`
	FechaFin           *time.Time      `json:"fecha_fin"`
}
