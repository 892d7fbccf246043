package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPresentacionRequest struct {
	ProductoID  int64           `json:"producto_id" validate:"required"`
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=120"`
	Cantidad    int             `json:"cantidad"    validate:"required,min=1"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"required"`
	ImagenURL   string          `json:"imagen_url"`
}

type ActualizarPresentacionRequest struct {
	ProductoID  *int64           `json:"producto_id"`
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=2,max=120"`
	Cantidad    *int             `json:"cantidad"    validate:"omitempty,min=1"`
	Precio      *decimal.Decimal `json:"precio"`
	Descripcion *string          `json:"descripcion"`
	ImagenURL   *string          `json:"imagen_url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PresentacionResponse struct {
	ID          int64           `json:"id"`
	ProductoID  int64           `json:"producto_id"`
	Producto    string          `json:"producto"`
	Nombre      string          `json:"nombre"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	Descripcion string          `json:"descripcion"`
	ImagenURL   string          `json:"imagen_url"`
	Activo      bool            `json:"activo"`
}
